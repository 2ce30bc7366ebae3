package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/servicecharge/internal/models"
)

// GarageCollection is what the building collects for parking in one period.
type GarageCollection struct {
	Motorcycle decimal.Decimal // motorcycle_spaces × motorcycle_fee
	Car        decimal.Decimal // car_spaces × car_fee
	Total      decimal.Decimal // Motorcycle + Car
	Combined   decimal.Decimal // grand_total + Total
}

// HasGarage reports whether any parking space is allocated.
func HasGarage(garage models.GarageSpace) bool {
	return garage.MotorcycleSpaces > 0 || garage.CarSpaces > 0
}

// CalculateGarageCollection totals the parking fees and adds them to the
// flats' grand total. Fees are per space and never divided among flats.
func CalculateGarageCollection(garage models.GarageSpace, grandTotal int64) GarageCollection {
	motorcycle := garage.MotorcycleSpaceAmount.Mul(decimal.NewFromInt(int64(garage.MotorcycleSpaces)))
	car := garage.CarSpaceAmount.Mul(decimal.NewFromInt(int64(garage.CarSpaces)))
	total := motorcycle.Add(car)

	return GarageCollection{
		Motorcycle: motorcycle,
		Car:        car,
		Total:      total,
		Combined:   decimal.NewFromInt(grandTotal).Add(total),
	}
}
