// Package storage provides abstractions for saving bill drafts locally.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/servicecharge/internal/models"
)

// ErrNotFound is returned when no draft is saved for a form mode.
var ErrNotFound = errors.New("draft not found")

// DraftStore keeps at most one bill draft per form mode.
// Drafts are a convenience for the single local user; nothing else
// depends on them surviving.
type DraftStore interface {
	// SaveDraft replaces the draft for mode with bill.
	SaveDraft(ctx context.Context, mode models.FormMode, bill *models.BillData) error

	// LoadDraft returns the draft for mode, or ErrNotFound.
	LoadDraft(ctx context.Context, mode models.FormMode) (*models.BillData, error)

	// ClearDraft deletes the draft for mode. Clearing a missing draft is not an error.
	ClearDraft(ctx context.Context, mode models.FormMode) error

	// Close releases any resources held by the store.
	Close() error
}
