// Package cli implements the servicecharge command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/servicecharge/internal/config"
	"github.com/mmynk/servicecharge/internal/metrics"
	"github.com/mmynk/servicecharge/internal/numeral"
	"github.com/mmynk/servicecharge/internal/service"
	"github.com/mmynk/servicecharge/internal/storage/sqlite"
	"github.com/mmynk/servicecharge/pkg/logging"
)

var version = "1.0.0"

// app holds what the commands share for one run.
type app struct {
	cfg     *config.Config
	metrics *metrics.Metrics

	// Flag values; empty means use the config.
	lang   string
	dbPath string

	store *sqlite.SQLiteStore
}

func newApp() *app {
	return &app{metrics: metrics.New()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "servicecharge",
		Short: "Split a building's service charges across its flats",
		Long: `servicecharge apportions shared building expenses (electricity, water,
security, cleaning) across flats, adds optional garage fees, and prints the
bill with localized numbers and amounts in words.

Bills are JSON files in the same layout the web app stores. Drafts can be
kept in a local SQLite database, one per form mode.

Environment variables (also read from .env):
  BILL_DB_PATH   - Draft database path (default: ./data/bills.db)
  BILL_LANGUAGE  - Language for numbers and words: en, bn (default: bn)
  BILL_CURRENCY  - ISO 4217 currency code shown after amounts (default: BDT)
  LOG_LEVEL      - debug, info, warn, error (default: info)
  METRICS_FILE   - Write Prometheus counters to this textfile after each run`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.lang, "lang", "", "Language for numbers and words (default from BILL_LANGUAGE)")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "Draft database path (default from BILL_DB_PATH)")

	root.AddCommand(
		a.summaryCmd(),
		a.previewCmd(),
		a.wordsCmd(),
		a.formatCmd(),
		a.exampleCmd(),
		a.draftCmd(),
		a.languagesCmd(),
	)
	return root
}

// setup loads configuration and logging before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if a.lang != "" {
		cfg.Language = a.lang
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logging.Setup(logging.Options{Level: cfg.LogLevel})
	slog.Debug("Configuration loaded",
		"language", cfg.Language,
		"currency", cfg.Currency,
		"database", cfg.DBPath,
	)
	return nil
}

// service returns a BillService without a draft store.
func (a *app) service() *service.BillService {
	return service.NewBillService(nil, numeral.Default, a.cfg.Display(), a.metrics)
}

// draftService opens the draft database on first use.
func (a *app) draftService() (*service.BillService, error) {
	if a.store == nil {
		store, err := sqlite.New(a.cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open draft store: %w", err)
		}
		slog.Debug("Draft store opened", "database", a.cfg.DBPath)
		a.store = store
	}
	return service.NewBillService(a.store, numeral.Default, a.cfg.Display(), a.metrics), nil
}

// close releases the store and writes the metrics textfile if configured.
func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			slog.Warn("Failed to close draft store", "error", err)
		}
		a.store = nil
	}
	if a.cfg != nil && a.cfg.MetricsFile != "" {
		if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
			slog.Warn("Failed to write metrics", "path", a.cfg.MetricsFile, "error", err)
		}
	}
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	a := newApp()
	err := a.rootCmd().ExecuteContext(context.Background())
	a.close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
