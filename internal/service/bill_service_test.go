package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/servicecharge/internal/metrics"
	"github.com/mmynk/servicecharge/internal/models"
	"github.com/mmynk/servicecharge/internal/numeral"
	"github.com/mmynk/servicecharge/internal/storage"
	"github.com/mmynk/servicecharge/internal/storage/sqlite"
)

// setupTestService creates a BillService backed by a SQLite store in a temp dir.
func setupTestService(t *testing.T) (*BillService, *metrics.Metrics) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "bills.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := metrics.New()
	return NewBillService(store, numeral.Default, numeral.WholeUnits("BDT"), m), m
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestSummarize(t *testing.T) {
	svc, m := setupTestService(t)

	summary, err := svc.Summarize(ExampleBill("en"))
	require.NoError(t, err)
	assert.Equal(t, int64(5300), summary.PerFlatTotal)
	assert.Equal(t, int64(53000), summary.GrandTotal)
	assert.Equal(t, 6, summary.CategoryTotals.Len())
	assert.Equal(t, 1.0, counterValue(t, m.SummariesCalculated))

	bill := ExampleBill("en")
	bill.NumberOfFlats = 0
	_, err = svc.Summarize(bill)
	assert.ErrorIs(t, err, ErrFlatsRequired)
	assert.Equal(t, 1.0, counterValue(t, m.ValidationFailures))
	assert.Equal(t, 1.0, counterValue(t, m.SummariesCalculated))
}

func TestSummarizeRejectsAmountsOutOfRange(t *testing.T) {
	svc, m := setupTestService(t)

	bill := &models.BillData{
		Title:         "Tower",
		NumberOfFlats: 3,
		Categories: []models.ServiceCategory{
			{ID: "1", Name: "Lift", BillType: models.BillTypeAllBuilding, Amount: decimal.RequireFromString("10000000000000000000001")},
		},
	}

	_, err := svc.Summarize(bill)
	assert.ErrorIs(t, err, ErrAmountTooLarge)
	assert.Equal(t, 0.0, counterValue(t, m.SummariesCalculated))

	// The largest bill that passes still reconciles.
	bill.NumberOfFlats = 1
	bill.Categories[0].Amount = models.MaxAmount
	summary, err := svc.Summarize(bill)
	require.NoError(t, err)
	assert.Equal(t, summary.PerFlatTotal, summary.GrandTotal)
	assert.True(t, decimal.NewFromInt(summary.GrandTotal).Equal(models.MaxAmount))
}

func TestWords(t *testing.T) {
	svc, m := setupTestService(t)

	assert.Equal(t, "Five Thousand Three Hundred", svc.Words(decimal.NewFromInt(5300), "en"))
	assert.Equal(t, "পাঁচ হাজার তিন শত", svc.Words(decimal.NewFromInt(5300), "bn"))
	assert.Equal(t, "Zero", svc.Words(decimal.Zero, "xx"))

	assert.Equal(t, 2.0, counterValue(t, m.AmountsSpelled.WithLabelValues("en")))
	assert.Equal(t, 1.0, counterValue(t, m.AmountsSpelled.WithLabelValues("bn")))
}

func TestPreview(t *testing.T) {
	svc, _ := setupTestService(t)

	t.Run("english example", func(t *testing.T) {
		p, err := svc.Preview(ExampleBill("en"), models.FormModeCalculated, "en")
		require.NoError(t, err)

		assert.Equal(t, "en", p.Language)
		assert.Equal(t, "10", p.NumberOfFlats)
		require.Len(t, p.Rows, 6)

		assert.Equal(t, "Electricity (Common Area)", p.Rows[0].Name)
		assert.Equal(t, "5,000 ÷ 10", p.Rows[0].Calculation)
		assert.Equal(t, "500 BDT", p.Rows[0].PerFlat)
		assert.Equal(t, "30,000 ÷ 10", p.Rows[2].Calculation)

		assert.True(t, p.Rows[4].SingleFlat)
		assert.Equal(t, "500", p.Rows[4].Calculation)
		assert.Equal(t, "500 BDT", p.Rows[4].PerFlat)

		assert.Equal(t, "5,300 BDT", p.PerFlatTotal)
		assert.Equal(t, "Five Thousand Three Hundred", p.PerFlatTotalWords)
		assert.Equal(t, "53,000 BDT", p.GrandTotal)
		assert.Equal(t, "Fifty Three Thousand", p.GrandTotalWords)
		assert.Nil(t, p.Garage)
	})

	t.Run("bangla example", func(t *testing.T) {
		p, err := svc.Preview(ExampleBill("bn"), models.FormModeCalculated, "bn")
		require.NoError(t, err)

		assert.Equal(t, "১০", p.NumberOfFlats)
		assert.Equal(t, "৫,০০০ ÷ ১০", p.Rows[0].Calculation)
		assert.Equal(t, "৫,৩০০ BDT", p.PerFlatTotal)
		assert.Equal(t, "পাঁচ হাজার তিন শত", p.PerFlatTotalWords)
	})

	t.Run("garage figures", func(t *testing.T) {
		bill := ExampleBill("en")
		bill.Garage = models.GarageSpace{
			MotorcycleSpaces:      3,
			MotorcycleSpaceAmount: decimal.NewFromInt(100),
			CarSpaces:             2,
			CarSpaceAmount:        decimal.NewFromInt(250),
		}

		p, err := svc.Preview(bill, models.FormModeCalculated, "en")
		require.NoError(t, err)
		require.NotNil(t, p.Garage)

		assert.Equal(t, "3", p.Garage.MotorcycleSpaces)
		assert.Equal(t, "300 BDT", p.Garage.MotorcycleCollection)
		assert.Equal(t, "500 BDT", p.Garage.CarCollection)
		assert.Equal(t, "5,400 BDT", p.Garage.TotalWithMotorcycle)
		assert.Equal(t, "5,550 BDT", p.Garage.TotalWithCar)
		assert.Equal(t, "5,650 BDT", p.Garage.TotalWithBoth)
		assert.Equal(t, "800 BDT", p.Garage.Collection)
		assert.Equal(t, "53,800 BDT", p.Garage.Combined)
		assert.Equal(t, "Fifty Three Thousand Eight Hundred", p.Garage.CombinedWords)
	})

	t.Run("blank form", func(t *testing.T) {
		bill := &models.BillData{
			Title: "Blank",
			Categories: []models.ServiceCategory{
				{ID: "1", Name: "Water", BillType: models.BillTypeAllBuilding},
				{ID: "2", Name: "Generator", BillType: models.BillTypeSingleFlat},
			},
		}

		p, err := svc.Preview(bill, models.FormModeBlank, "en")
		require.NoError(t, err)
		assert.Equal(t, models.FormModeBlank, p.Mode)
		assert.Empty(t, p.NumberOfFlats)
		require.Len(t, p.Rows, 2)
		assert.Empty(t, p.Rows[0].PerFlat)
		assert.True(t, p.Rows[1].SingleFlat)
		assert.Empty(t, p.PerFlatTotal)
		assert.Zero(t, p.Summary.GrandTotal)
	})

	t.Run("invalid bill", func(t *testing.T) {
		bill := ExampleBill("en")
		bill.Title = ""

		_, err := svc.Preview(bill, models.FormModeCalculated, "en")
		assert.ErrorIs(t, err, ErrTitleRequired)

		_, err = svc.Preview(&models.BillData{Title: "x"}, models.FormModeBlank, "en")
		assert.ErrorIs(t, err, ErrNoCategories)
	})
}

func TestDrafts(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()

	_, err := svc.LoadDraft(ctx, models.FormModeCalculated)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	bill := ExampleBill("bn")
	require.NoError(t, svc.SaveDraft(ctx, models.FormModeCalculated, bill))

	got, err := svc.LoadDraft(ctx, models.FormModeCalculated)
	require.NoError(t, err)
	assert.Equal(t, bill.Title, got.Title)
	require.Len(t, got.Categories, 6)
	assert.Equal(t, bill.Categories[3].ID, got.Categories[3].ID)

	require.NoError(t, svc.ClearDraft(ctx, models.FormModeCalculated))
	_, err = svc.LoadDraft(ctx, models.FormModeCalculated)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.Equal(t, 1.0, counterValue(t, m.DraftOperations.WithLabelValues("save", "ok")))
	assert.Equal(t, 3.0, counterValue(t, m.DraftOperations.WithLabelValues("load", "ok")))
	assert.Equal(t, 1.0, counterValue(t, m.DraftOperations.WithLabelValues("clear", "ok")))
}

func TestSaveDraftRefusesEmptyBill(t *testing.T) {
	svc, m := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveDraft(ctx, models.FormModeBlank, &models.BillData{Title: "Kept"}))

	err := svc.SaveDraft(ctx, models.FormModeBlank, &models.BillData{NumberOfFlats: 5})
	assert.ErrorIs(t, err, ErrEmptyDraft)

	got, err := svc.LoadDraft(ctx, models.FormModeBlank)
	require.NoError(t, err)
	assert.Equal(t, "Kept", got.Title)
	assert.Equal(t, 1.0, counterValue(t, m.DraftOperations.WithLabelValues("save", "ok")))
}

func TestDraftsWithoutStore(t *testing.T) {
	svc := NewBillService(nil, nil, numeral.WholeUnits("BDT"), nil)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SaveDraft(ctx, models.FormModeBlank, &models.BillData{}), ErrNoDraftStore)
	_, err := svc.LoadDraft(ctx, models.FormModeBlank)
	assert.ErrorIs(t, err, ErrNoDraftStore)
	assert.ErrorIs(t, svc.ClearDraft(ctx, models.FormModeBlank), ErrNoDraftStore)
}
