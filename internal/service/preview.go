package service

import (
	"github.com/mmynk/servicecharge/internal/models"
)

// Preview is a bill with every figure already rendered for one language.
// Blank forms carry the category rows with empty amounts.
type Preview struct {
	Mode     models.FormMode
	Language string

	Title         string
	NumberOfFlats string
	Rows          []PreviewRow

	PerFlatTotal      string
	PerFlatTotalWords string
	GrandTotal        string
	GrandTotalWords   string

	// Garage is nil when no parking spaces are allocated.
	Garage *GaragePreview

	PaymentInfo string
	Notes       string

	// Summary holds the unformatted figures. Zero for blank forms.
	Summary models.BillSummary
}

// PreviewRow is one category line of the bill table.
type PreviewRow struct {
	Name     string
	Duration string
	Info     string

	// SingleFlat marks amounts charged per flat as entered.
	SingleFlat bool

	// Calculation shows how the share was derived, e.g. "5,000 ÷ 10".
	// For single-flat rows it is the amount itself.
	Calculation string

	// PerFlat is the formatted share of one flat, with currency.
	PerFlat string
}

// GaragePreview holds the rendered parking figures.
type GaragePreview struct {
	MotorcycleSpaces     string
	MotorcycleFee        string
	MotorcycleNotes      string
	MotorcycleCollection string

	CarSpaces     string
	CarFee        string
	CarNotes      string
	CarCollection string

	TotalWithMotorcycle string
	TotalWithCar        string
	TotalWithBoth       string

	// Collection is what all garage spaces bring in.
	Collection string

	// Combined is the flats' grand total plus Collection.
	Combined      string
	CombinedWords string
}
