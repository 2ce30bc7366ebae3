package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/servicecharge/internal/middleware"
	"github.com/mmynk/servicecharge/internal/models"
	"github.com/mmynk/servicecharge/internal/service"
	"github.com/mmynk/servicecharge/internal/storage"
)

func (a *app) draftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Keep a work-in-progress bill in the local database",
		Long: `Drafts are stored in the SQLite database at BILL_DB_PATH, one per form
mode. Saving a draft replaces the previous one for that mode.`,
		Example: `  servicecharge draft save january.json
  servicecharge draft summary
  servicecharge draft show > january.json
  servicecharge draft clear --mode blank`,
	}

	var mode string
	cmd.PersistentFlags().StringVar(&mode, "mode", string(models.FormModeCalculated), "Form mode: calculated or blank")
	formMode := func() models.FormMode { return models.ParseFormMode(mode) }

	saveCmd := &cobra.Command{
		Use:   "save <bill.json>",
		Short: "Store a bill file as the draft",
		Args:  cobra.ExactArgs(1),
		RunE: middleware.Logging(func(cmd *cobra.Command, args []string) error {
			bill, err := service.ReadBillFile(args[0])
			if err != nil {
				return err
			}
			svc, err := a.draftService()
			if err != nil {
				return err
			}
			if err := svc.SaveDraft(cmd.Context(), formMode(), bill); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s draft %q\n", formMode(), bill.Title)
			return nil
		}),
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the draft as a bill file",
		Args:  cobra.NoArgs,
		RunE: middleware.Logging(func(cmd *cobra.Command, args []string) error {
			bill, err := a.loadDraft(cmd, formMode())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), bill)
		}),
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Calculate totals for the calculated draft",
		Args:  cobra.NoArgs,
		RunE: middleware.Logging(func(cmd *cobra.Command, args []string) error {
			bill, err := a.loadDraft(cmd, models.FormModeCalculated)
			if err != nil {
				return err
			}
			return a.printSummary(cmd.OutOrStdout(), bill, false)
		}),
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the draft",
		Args:  cobra.NoArgs,
		RunE: middleware.Logging(func(cmd *cobra.Command, args []string) error {
			svc, err := a.draftService()
			if err != nil {
				return err
			}
			if err := svc.ClearDraft(cmd.Context(), formMode()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s draft\n", formMode())
			return nil
		}),
	}

	cmd.AddCommand(saveCmd, showCmd, summaryCmd, clearCmd)
	return cmd
}

func (a *app) loadDraft(cmd *cobra.Command, mode models.FormMode) (*models.BillData, error) {
	svc, err := a.draftService()
	if err != nil {
		return nil, err
	}
	bill, err := svc.LoadDraft(cmd.Context(), mode)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("no %s draft saved; use 'servicecharge draft save' first: %w", mode, err)
	}
	return bill, err
}
