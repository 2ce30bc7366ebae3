package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/servicecharge/internal/calculator"
	"github.com/mmynk/servicecharge/internal/metrics"
	"github.com/mmynk/servicecharge/internal/models"
	"github.com/mmynk/servicecharge/internal/numeral"
	"github.com/mmynk/servicecharge/internal/storage"
)

// ErrNoDraftStore is returned by draft operations when no store was configured.
var ErrNoDraftStore = errors.New("draft store is not configured")

// ErrEmptyDraft is returned when saving a bill with no title and no categories.
var ErrEmptyDraft = errors.New("nothing to save: bill has no title and no categories")

// BillService validates, summarizes and renders bills, and keeps drafts.
type BillService struct {
	store    storage.DraftStore
	registry *numeral.Registry
	display  numeral.Display
	metrics  *metrics.Metrics
}

// NewBillService creates a BillService. store may be nil when drafts are not
// used; a nil registry means numeral.Default and nil metrics a fresh set.
func NewBillService(store storage.DraftStore, registry *numeral.Registry, display numeral.Display, m *metrics.Metrics) *BillService {
	if registry == nil {
		registry = numeral.Default
	}
	if m == nil {
		m = metrics.New()
	}
	return &BillService{
		store:    store,
		registry: registry,
		display:  display,
		metrics:  m,
	}
}

// Summarize validates a calculated bill and apportions it across its flats.
func (s *BillService) Summarize(bill *models.BillData) (models.BillSummary, error) {
	if err := s.validate(bill, models.FormModeCalculated); err != nil {
		return models.BillSummary{}, err
	}

	summary := calculator.CalculateBillSummary(bill.Categories, bill.NumberOfFlats, bill.Garage)
	s.metrics.SummariesCalculated.Inc()

	slog.Debug("Bill summarized",
		"categories", len(bill.Categories),
		"flats", bill.NumberOfFlats,
		"per_flat", summary.PerFlatTotal,
		"grand_total", summary.GrandTotal,
	)
	return summary, nil
}

// Words spells amount in lang.
func (s *BillService) Words(amount decimal.Decimal, lang string) string {
	code := s.registry.Lookup(lang).Code
	s.metrics.AmountsSpelled.WithLabelValues(code).Inc()
	return s.registry.NumberToWords(amount, code)
}

// Format renders amount in lang with the configured currency.
func (s *BillService) Format(amount decimal.Decimal, lang string) string {
	return s.registry.FormatCurrency(amount, lang, s.display)
}

// FormatNumber renders a count, such as the number of flats, in lang.
func (s *BillService) FormatNumber(n int64, lang string) string {
	return s.registry.FormatAmount(decimal.NewFromInt(n), lang, numeral.Display{})
}

// Preview validates bill for mode and renders it in lang.
func (s *BillService) Preview(bill *models.BillData, mode models.FormMode, lang string) (*Preview, error) {
	if mode == models.FormModeBlank {
		if err := s.validate(bill, mode); err != nil {
			return nil, err
		}
		return s.blankPreview(bill, lang), nil
	}

	summary, err := s.Summarize(bill)
	if err != nil {
		return nil, err
	}

	p := &Preview{
		Mode:              mode,
		Language:          s.registry.Lookup(lang).Code,
		Title:             bill.Title,
		NumberOfFlats:     s.FormatNumber(int64(bill.NumberOfFlats), lang),
		Rows:              make([]PreviewRow, 0, len(bill.Categories)),
		PerFlatTotal:      s.Format(decimal.NewFromInt(summary.PerFlatTotal), lang),
		PerFlatTotalWords: s.Words(decimal.NewFromInt(summary.PerFlatTotal), lang),
		GrandTotal:        s.Format(decimal.NewFromInt(summary.GrandTotal), lang),
		GrandTotalWords:   s.Words(decimal.NewFromInt(summary.GrandTotal), lang),
		PaymentInfo:       bill.PaymentInfo,
		Notes:             bill.Notes,
		Summary:           summary,
	}

	for _, c := range bill.Categories {
		row := PreviewRow{
			Name:       c.Name,
			Duration:   c.Duration,
			Info:       c.Info,
			SingleFlat: c.BillType.IsSingleFlat(),
			PerFlat:    s.Format(summary.CategoryTotals.Share(c.ID), lang),
		}
		amount := s.registry.FormatAmount(c.Amount, lang, numeral.Display{FractionDigits: s.display.FractionDigits})
		if row.SingleFlat {
			row.Calculation = amount
		} else {
			row.Calculation = fmt.Sprintf("%s ÷ %s", amount, p.NumberOfFlats)
		}
		p.Rows = append(p.Rows, row)
	}

	if calculator.HasGarage(bill.Garage) {
		p.Garage = s.garagePreview(bill.Garage, summary, lang)
	}
	return p, nil
}

func (s *BillService) blankPreview(bill *models.BillData, lang string) *Preview {
	p := &Preview{
		Mode:        models.FormModeBlank,
		Language:    s.registry.Lookup(lang).Code,
		Title:       bill.Title,
		Rows:        make([]PreviewRow, 0, len(bill.Categories)),
		PaymentInfo: bill.PaymentInfo,
		Notes:       bill.Notes,
	}
	if bill.NumberOfFlats > 0 {
		p.NumberOfFlats = s.FormatNumber(int64(bill.NumberOfFlats), lang)
	}
	for _, c := range bill.Categories {
		p.Rows = append(p.Rows, PreviewRow{
			Name:       c.Name,
			Duration:   c.Duration,
			Info:       c.Info,
			SingleFlat: c.BillType.IsSingleFlat(),
		})
	}
	return p
}

func (s *BillService) garagePreview(garage models.GarageSpace, summary models.BillSummary, lang string) *GaragePreview {
	collection := calculator.CalculateGarageCollection(garage, summary.GrandTotal)
	return &GaragePreview{
		MotorcycleSpaces:     s.FormatNumber(int64(garage.MotorcycleSpaces), lang),
		MotorcycleFee:        s.Format(garage.MotorcycleSpaceAmount, lang),
		MotorcycleNotes:      garage.MotorcycleSpaceNotes,
		MotorcycleCollection: s.Format(collection.Motorcycle, lang),
		CarSpaces:            s.FormatNumber(int64(garage.CarSpaces), lang),
		CarFee:               s.Format(garage.CarSpaceAmount, lang),
		CarNotes:             garage.CarSpaceNotes,
		CarCollection:        s.Format(collection.Car, lang),
		TotalWithMotorcycle:  s.Format(decimal.NewFromInt(summary.TotalWithMotorcycle), lang),
		TotalWithCar:         s.Format(decimal.NewFromInt(summary.TotalWithCar), lang),
		TotalWithBoth:        s.Format(decimal.NewFromInt(summary.TotalWithBoth), lang),
		Collection:           s.Format(collection.Total, lang),
		Combined:             s.Format(collection.Combined, lang),
		CombinedWords:        s.Words(collection.Combined, lang),
	}
}

func (s *BillService) validate(bill *models.BillData, mode models.FormMode) error {
	if err := Validate(bill, mode); err != nil {
		s.metrics.ValidationFailures.Inc()
		slog.Warn("Bill failed validation", "mode", mode, "error", err)
		return err
	}
	return nil
}

// SaveDraft stores bill as the draft for mode, replacing any earlier draft.
// Drafts are not validated since they hold work in progress, but an empty
// bill is refused so it cannot replace a real draft.
func (s *BillService) SaveDraft(ctx context.Context, mode models.FormMode, bill *models.BillData) error {
	if s.store == nil {
		return ErrNoDraftStore
	}
	if bill.IsEmpty() {
		return ErrEmptyDraft
	}
	err := s.store.SaveDraft(ctx, mode, bill)
	s.metrics.DraftOperation("save", err)
	if err != nil {
		return fmt.Errorf("failed to save %s draft: %w", mode, err)
	}
	slog.Info("Draft saved", "mode", mode, "title", bill.Title, "categories", len(bill.Categories))
	return nil
}

// LoadDraft returns the draft for mode. Errors wrap storage.ErrNotFound when
// nothing was saved.
func (s *BillService) LoadDraft(ctx context.Context, mode models.FormMode) (*models.BillData, error) {
	if s.store == nil {
		return nil, ErrNoDraftStore
	}
	bill, err := s.store.LoadDraft(ctx, mode)
	if errors.Is(err, storage.ErrNotFound) {
		s.metrics.DraftOperation("load", nil)
		return nil, err
	}
	s.metrics.DraftOperation("load", err)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s draft: %w", mode, err)
	}
	slog.Debug("Draft loaded", "mode", mode, "title", bill.Title)
	return bill, nil
}

// ClearDraft removes the draft for mode. Clearing a missing draft is not an error.
func (s *BillService) ClearDraft(ctx context.Context, mode models.FormMode) error {
	if s.store == nil {
		return ErrNoDraftStore
	}
	err := s.store.ClearDraft(ctx, mode)
	s.metrics.DraftOperation("clear", err)
	if err != nil {
		return fmt.Errorf("failed to clear %s draft: %w", mode, err)
	}
	slog.Info("Draft cleared", "mode", mode)
	return nil
}
