package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/servicecharge/internal/models"
)

func validBill() *models.BillData {
	return &models.BillData{
		Title:         "January",
		NumberOfFlats: 4,
		Categories: []models.ServiceCategory{
			{ID: "1", Name: "Water", BillType: models.BillTypeAllBuilding, Amount: decimal.NewFromInt(400)},
			{ID: "2", Name: "Repair", BillType: models.BillTypeSingleFlat, Amount: decimal.NewFromInt(50)},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mode   models.FormMode
		modify func(b *models.BillData)
		want   []error
	}{
		{
			name:   "valid calculated bill",
			mode:   models.FormModeCalculated,
			modify: func(b *models.BillData) {},
		},
		{
			name:   "blank title",
			mode:   models.FormModeCalculated,
			modify: func(b *models.BillData) { b.Title = "   " },
			want:   []error{ErrTitleRequired},
		},
		{
			name:   "zero flats",
			mode:   models.FormModeCalculated,
			modify: func(b *models.BillData) { b.NumberOfFlats = 0 },
			want:   []error{ErrFlatsRequired},
		},
		{
			name:   "unnamed category",
			mode:   models.FormModeCalculated,
			modify: func(b *models.BillData) { b.Categories[1].Name = "" },
			want:   []error{ErrCategoryNameRequired},
		},
		{
			name: "amount below one",
			mode: models.FormModeCalculated,
			modify: func(b *models.BillData) {
				b.Categories[0].Amount = decimal.RequireFromString("0.5")
			},
			want: []error{ErrAmountTooSmall},
		},
		{
			name: "every problem is reported",
			mode: models.FormModeCalculated,
			modify: func(b *models.BillData) {
				b.Title = ""
				b.NumberOfFlats = -1
				b.Categories[0].Name = ""
				b.Categories[1].Amount = decimal.Zero
			},
			want: []error{ErrTitleRequired, ErrFlatsRequired, ErrCategoryNameRequired, ErrAmountTooSmall},
		},
		{
			name: "amount beyond int64",
			mode: models.FormModeCalculated,
			modify: func(b *models.BillData) {
				b.Categories[0].Amount = decimal.RequireFromString("10000000000000000000001")
			},
			want: []error{ErrAmountTooLarge},
		},
		{
			name: "large negative amount is out of range, not too small",
			mode: models.FormModeCalculated,
			modify: func(b *models.BillData) {
				b.Categories[1].Amount = decimal.RequireFromString("-99999999999999999999")
			},
			want: []error{ErrAmountTooLarge},
		},
		{
			name: "garage fees out of range",
			mode: models.FormModeCalculated,
			modify: func(b *models.BillData) {
				b.Garage.MotorcycleSpaceAmount = models.MaxAmount.Add(decimal.NewFromInt(1))
				b.Garage.CarSpaceAmount = models.MaxAmount.Mul(decimal.NewFromInt(10))
			},
			want: []error{ErrAmountTooLarge, ErrAmountTooLarge},
		},
		{
			name: "largest amount is accepted",
			mode: models.FormModeCalculated,
			modify: func(b *models.BillData) {
				b.NumberOfFlats = 1
				b.Categories = b.Categories[:1]
				b.Categories[0].Amount = models.MaxAmount
			},
		},
		{
			name: "grand total out of range",
			mode: models.FormModeCalculated,
			modify: func(b *models.BillData) {
				// ceil(10^15 / 3) * 3 = 10^15 + 2
				b.NumberOfFlats = 3
				b.Categories = b.Categories[:1]
				b.Categories[0].Amount = models.MaxAmount
			},
			want: []error{ErrAmountTooLarge},
		},
		{
			name: "per flat total out of range",
			mode: models.FormModeCalculated,
			modify: func(b *models.BillData) {
				b.Categories[0].BillType = models.BillTypeSingleFlat
				b.Categories[0].Amount = models.MaxAmount
				b.Categories[1].Amount = models.MaxAmount
			},
			want: []error{ErrAmountTooLarge},
		},
		{
			name: "calculated bill without categories is allowed",
			mode: models.FormModeCalculated,
			modify: func(b *models.BillData) {
				b.Categories = nil
			},
		},
		{
			name: "blank form ignores flats and amounts",
			mode: models.FormModeBlank,
			modify: func(b *models.BillData) {
				b.NumberOfFlats = 0
				b.Categories[0].Amount = decimal.Zero
				b.Categories[1].Name = ""
			},
		},
		{
			name: "blank form needs a category",
			mode: models.FormModeBlank,
			modify: func(b *models.BillData) {
				b.Categories = nil
			},
			want: []error{ErrNoCategories},
		},
		{
			name: "blank form needs a title",
			mode: models.FormModeBlank,
			modify: func(b *models.BillData) {
				b.Title = ""
			},
			want: []error{ErrTitleRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := validBill()
			tt.modify(bill)

			err := Validate(bill, tt.mode)
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr.Fields, len(tt.want))
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	bill := validBill()
	bill.Categories[1].Amount = decimal.Zero

	err := Validate(bill, models.FormModeCalculated)
	require.Error(t, err)
	assert.Equal(t, "invalid calculated bill: categories[1].amount: amount must be at least 1", err.Error())
	assert.False(t, errors.Is(err, ErrTitleRequired))
}

func TestValidateOutOfRangeField(t *testing.T) {
	bill := validBill()
	bill.NumberOfFlats = 3
	bill.Categories[0].Amount = decimal.RequireFromString("10000000000000000000001")

	err := Validate(bill, models.FormModeCalculated)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "categories[0].amount", verr.Fields[0].Field)
	assert.False(t, errors.Is(err, ErrAmountTooSmall))
}
