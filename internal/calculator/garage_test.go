package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/servicecharge/internal/models"
)

func TestCalculateGarageCollection(t *testing.T) {
	tests := []struct {
		name           string
		garage         models.GarageSpace
		grandTotal     int64
		wantMotorcycle string
		wantCar        string
		wantTotal      string
		wantCombined   string
	}{
		{
			name: "both kinds of space",
			garage: models.GarageSpace{
				MotorcycleSpaces:      3,
				MotorcycleSpaceAmount: decimal.NewFromInt(100),
				CarSpaces:             2,
				CarSpaceAmount:        decimal.NewFromInt(250),
			},
			grandTotal:     53000,
			wantMotorcycle: "300",
			wantCar:        "500",
			wantTotal:      "800",
			wantCombined:   "53800",
		},
		{
			name: "fee without spaces collects nothing",
			garage: models.GarageSpace{
				MotorcycleSpaceAmount: decimal.NewFromInt(100),
			},
			grandTotal:     1000,
			wantMotorcycle: "0",
			wantCar:        "0",
			wantTotal:      "0",
			wantCombined:   "1000",
		},
		{
			name:           "empty garage",
			garage:         models.GarageSpace{},
			grandTotal:     0,
			wantMotorcycle: "0",
			wantCar:        "0",
			wantTotal:      "0",
			wantCombined:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGarageCollection(tt.garage, tt.grandTotal)

			check := func(field string, got decimal.Decimal, want string) {
				if !got.Equal(decimal.RequireFromString(want)) {
					t.Errorf("%s = %s, want %s", field, got, want)
				}
			}
			check("Motorcycle", got.Motorcycle, tt.wantMotorcycle)
			check("Car", got.Car, tt.wantCar)
			check("Total", got.Total, tt.wantTotal)
			check("Combined", got.Combined, tt.wantCombined)
		})
	}
}

func TestHasGarage(t *testing.T) {
	if HasGarage(models.GarageSpace{}) {
		t.Error("HasGarage(empty) = true, want false")
	}
	if !HasGarage(models.GarageSpace{CarSpaces: 1}) {
		t.Error("HasGarage(1 car space) = false, want true")
	}
	if !HasGarage(models.GarageSpace{MotorcycleSpaces: 2}) {
		t.Error("HasGarage(2 motorcycle spaces) = false, want true")
	}
}
