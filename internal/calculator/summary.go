// Package calculator apportions shared building expenses across flats.
//
// Every function here is pure: same input, same output, no logging and no
// errors. Incomplete input (zero flats, no categories) degrades to zero totals.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/servicecharge/internal/models"
)

// CalculateBillSummary computes each flat's share of the bill.
//
// Algorithm:
//   - single-flat category: share = amount
//   - all-building category: share = ceil(amount / flats), or 0 when flats is 0
//   - per_flat_total = ceil(sum of shares)
//   - grand_total = ceil(per_flat_total × flats)
//   - garage variants = per_flat_total + ceil(space fee)
//
// Rounding is always up so the building never collects less than it spends.
// Totals are whole units in int64; callers keep amounts and totals within
// models.MaxAmount (service.Validate does).
func CalculateBillSummary(categories []models.ServiceCategory, numberOfFlats int, garage models.GarageSpace) models.BillSummary {
	categoryTotals := models.NewCategoryTotals(len(categories))
	sum := decimal.Zero

	for _, category := range categories {
		share := CategoryShare(category, numberOfFlats)
		sum = sum.Add(share)
		categoryTotals.Set(category.ID, share)
	}

	perFlatTotal := sum.Ceil()
	grandTotal := perFlatTotal.Mul(decimal.NewFromInt(int64(numberOfFlats))).Ceil()

	motorcycleFee := garage.MotorcycleSpaceAmount.Ceil()
	carFee := garage.CarSpaceAmount.Ceil()

	return models.BillSummary{
		PerFlatTotal:        perFlatTotal.IntPart(),
		GrandTotal:          grandTotal.IntPart(),
		TotalWithMotorcycle: perFlatTotal.Add(motorcycleFee).IntPart(),
		TotalWithCar:        perFlatTotal.Add(carFee).IntPart(),
		TotalWithBoth:       perFlatTotal.Add(motorcycleFee).Add(carFee).IntPart(),
		CategoryTotals:      categoryTotals,
	}
}

// CategoryShare returns what one flat pays for a single category.
// Negative amounts (credits) go through the same ceiling as charges.
func CategoryShare(category models.ServiceCategory, numberOfFlats int) decimal.Decimal {
	if category.BillType.IsSingleFlat() {
		return category.Amount
	}
	if numberOfFlats <= 0 {
		return decimal.Zero
	}
	return category.Amount.Div(decimal.NewFromInt(int64(numberOfFlats))).Ceil()
}
