package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/servicecharge/internal/calculator"
	"github.com/mmynk/servicecharge/internal/models"
)

// Validation failures. A *ValidationError wraps one of these per bad field,
// so callers can test with errors.Is.
var (
	ErrTitleRequired        = errors.New("bill title is required")
	ErrFlatsRequired        = errors.New("number of flats must be at least 1")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrAmountTooSmall       = errors.New("amount must be at least 1")
	ErrNoCategories         = errors.New("at least one category is required")
	ErrAmountTooLarge       = fmt.Errorf("amount must be between -%s and %s", models.MaxAmount, models.MaxAmount)
)

// FieldError is a validation failure for one field of a bill.
type FieldError struct {
	// Field names the input, e.g. "title" or "categories[2].amount".
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Mode   models.FormMode
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("invalid %s bill: %s", e.Mode, strings.Join(msgs, "; "))
}

// Unwrap returns the field errors so errors.Is matches any of the sentinels.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, f := range e.Fields {
		errs[i] = f
	}
	return errs
}

var minAmount = decimal.NewFromInt(1)

// Validate checks a bill before it is previewed.
//
// Calculated bills need a title, at least one flat, and a name and an amount
// of at least 1 for every category. Amounts and the totals derived from them
// must stay within models.MaxAmount. Blank forms only need a title and one
// category. Returns nil or a *ValidationError.
func Validate(bill *models.BillData, mode models.FormMode) error {
	v := &ValidationError{Mode: mode}
	add := func(field string, err error) {
		v.Fields = append(v.Fields, FieldError{Field: field, Err: err})
	}

	if strings.TrimSpace(bill.Title) == "" {
		add("title", ErrTitleRequired)
	}

	if mode == models.FormModeBlank {
		if len(bill.Categories) == 0 {
			add("categories", ErrNoCategories)
		}
	} else {
		if bill.NumberOfFlats < 1 {
			add("numberOfFlats", ErrFlatsRequired)
		}
		for i, c := range bill.Categories {
			if strings.TrimSpace(c.Name) == "" {
				add(fmt.Sprintf("categories[%d].name", i), ErrCategoryNameRequired)
			}
			if models.WithinRange(c.Amount) && c.Amount.LessThan(minAmount) {
				add(fmt.Sprintf("categories[%d].amount", i), ErrAmountTooSmall)
			}
		}
		rangeErrs := rangeErrors(bill)
		v.Fields = append(v.Fields, rangeErrs...)
		if len(rangeErrs) == 0 && bill.NumberOfFlats >= 1 && !totalsWithinRange(bill) {
			add("total", ErrAmountTooLarge)
		}
	}

	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

// rangeErrors lists every entered amount in bill outside models.MaxAmount.
func rangeErrors(bill *models.BillData) []FieldError {
	var errs []FieldError
	for i, c := range bill.Categories {
		if !models.WithinRange(c.Amount) {
			errs = append(errs, FieldError{Field: fmt.Sprintf("categories[%d].amount", i), Err: ErrAmountTooLarge})
		}
	}
	if !models.WithinRange(bill.Garage.MotorcycleSpaceAmount) {
		errs = append(errs, FieldError{Field: "garage.motorcycleSpaceAmount", Err: ErrAmountTooLarge})
	}
	if !models.WithinRange(bill.Garage.CarSpaceAmount) {
		errs = append(errs, FieldError{Field: "garage.carSpaceAmount", Err: ErrAmountTooLarge})
	}
	return errs
}

// totalsWithinRange reports whether the per-flat total, the grand total and
// the garage variants of bill all stay within models.MaxAmount.
func totalsWithinRange(bill *models.BillData) bool {
	sum := decimal.Zero
	for _, c := range bill.Categories {
		sum = sum.Add(calculator.CategoryShare(c, bill.NumberOfFlats))
	}
	perFlat := sum.Ceil()
	grand := perFlat.Mul(decimal.NewFromInt(int64(bill.NumberOfFlats))).Ceil()
	withBoth := perFlat.Add(bill.Garage.MotorcycleSpaceAmount.Ceil()).Add(bill.Garage.CarSpaceAmount.Ceil())

	return models.WithinRange(perFlat) && models.WithinRange(grand) && models.WithinRange(withBoth)
}
