// Package sqlite provides a SQLite-backed implementation of the storage.DraftStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/servicecharge/internal/models"
	"github.com/mmynk/servicecharge/internal/storage"
)

// Ensure SQLiteStore implements storage.DraftStore
var _ storage.DraftStore = (*SQLiteStore)(nil)

// SQLiteStore implements storage.DraftStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveDraft replaces the draft for mode, categories included.
func (s *SQLiteStore) SaveDraft(ctx context.Context, mode models.FormMode, bill *models.BillData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	g := bill.Garage
	_, err = tx.ExecContext(ctx, `
		INSERT INTO drafts (
			mode, title, number_of_flats, payment_info, notes, updated_at,
			motorcycle_spaces, motorcycle_space_amount, motorcycle_space_notes,
			car_spaces, car_space_amount, car_space_notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(mode) DO UPDATE SET
			title = excluded.title,
			number_of_flats = excluded.number_of_flats,
			payment_info = excluded.payment_info,
			notes = excluded.notes,
			updated_at = excluded.updated_at,
			motorcycle_spaces = excluded.motorcycle_spaces,
			motorcycle_space_amount = excluded.motorcycle_space_amount,
			motorcycle_space_notes = excluded.motorcycle_space_notes,
			car_spaces = excluded.car_spaces,
			car_space_amount = excluded.car_space_amount,
			car_space_notes = excluded.car_space_notes`,
		string(mode), bill.Title, bill.NumberOfFlats, bill.PaymentInfo, bill.Notes, time.Now().Unix(),
		g.MotorcycleSpaces, g.MotorcycleSpaceAmount.String(), g.MotorcycleSpaceNotes,
		g.CarSpaces, g.CarSpaceAmount.String(), g.CarSpaceNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}

	// Replace categories wholesale; position keeps the user's order
	if _, err := tx.ExecContext(ctx, "DELETE FROM draft_categories WHERE mode = ?", string(mode)); err != nil {
		return fmt.Errorf("failed to delete draft categories: %w", err)
	}

	for i, c := range bill.Categories {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO draft_categories (mode, position, id, name, duration, info, bill_type, amount) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			string(mode), i, c.ID, c.Name, c.Duration, c.Info, string(c.BillType), c.Amount.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert draft category: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LoadDraft retrieves the draft for mode, including its categories in order.
func (s *SQLiteStore) LoadDraft(ctx context.Context, mode models.FormMode) (*models.BillData, error) {
	bill := &models.BillData{}
	var motorcycleAmount, carAmount string
	err := s.db.QueryRowContext(ctx, `
		SELECT title, number_of_flats, payment_info, notes,
			motorcycle_spaces, motorcycle_space_amount, motorcycle_space_notes,
			car_spaces, car_space_amount, car_space_notes
		FROM drafts WHERE mode = ?`,
		string(mode),
	).Scan(
		&bill.Title, &bill.NumberOfFlats, &bill.PaymentInfo, &bill.Notes,
		&bill.Garage.MotorcycleSpaces, &motorcycleAmount, &bill.Garage.MotorcycleSpaceNotes,
		&bill.Garage.CarSpaces, &carAmount, &bill.Garage.CarSpaceNotes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, mode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	if bill.Garage.MotorcycleSpaceAmount, err = decimal.NewFromString(motorcycleAmount); err != nil {
		return nil, fmt.Errorf("failed to parse motorcycle space amount: %w", err)
	}
	if bill.Garage.CarSpaceAmount, err = decimal.NewFromString(carAmount); err != nil {
		return nil, fmt.Errorf("failed to parse car space amount: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, duration, info, bill_type, amount FROM draft_categories WHERE mode = ? ORDER BY position",
		string(mode),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get draft categories: %w", err)
	}
	defer rows.Close()

	bill.Categories = []models.ServiceCategory{}
	for rows.Next() {
		var c models.ServiceCategory
		var billType, amount string
		if err := rows.Scan(&c.ID, &c.Name, &c.Duration, &c.Info, &billType, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan draft category: %w", err)
		}
		c.BillType = models.BillType(billType)
		if c.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse amount of category %s: %w", c.ID, err)
		}
		bill.Categories = append(bill.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draft categories: %w", err)
	}

	return bill, nil
}

// ClearDraft removes the draft for mode and its categories.
func (s *SQLiteStore) ClearDraft(ctx context.Context, mode models.FormMode) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// PRAGMA foreign_keys is per connection, so don't rely on the cascade
	if _, err := tx.ExecContext(ctx, "DELETE FROM draft_categories WHERE mode = ?", string(mode)); err != nil {
		return fmt.Errorf("failed to delete draft categories: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM drafts WHERE mode = ?", string(mode)); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
