package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest magnitude accepted for an entered amount or a
// derived total. Anything below it fits in the int64 totals of BillSummary.
var MaxAmount = decimal.New(1, 15)

// WithinRange reports whether amount is between -MaxAmount and MaxAmount.
func WithinRange(amount decimal.Decimal) bool {
	return amount.Abs().LessThanOrEqual(MaxAmount)
}

// BillType decides how a category amount is apportioned.
type BillType string

const (
	// BillTypeSingleFlat means the amount is already the charge for one flat.
	BillTypeSingleFlat BillType = "single-flat"

	// BillTypeAllBuilding means the amount is the charge for the whole building
	// and is divided across all flats.
	BillTypeAllBuilding BillType = "all-building"
)

// IsSingleFlat reports whether the amount is charged per flat as entered.
// Any value other than single-flat is apportioned across the building.
func (t BillType) IsSingleFlat() bool {
	return t == BillTypeSingleFlat
}

// FormMode is the kind of bill being prepared.
type FormMode string

const (
	// FormModeCalculated is a bill with amounts that gets apportioned.
	FormModeCalculated FormMode = "calculated"

	// FormModeBlank is a printable form with categories but no amounts filled in.
	FormModeBlank FormMode = "blank"
)

// ParseFormMode returns the mode named by s, or FormModeCalculated if s is unknown.
func ParseFormMode(s string) FormMode {
	if FormMode(s) == FormModeBlank {
		return FormModeBlank
	}
	return FormModeCalculated
}

// ServiceCategory represents one shared expense line item.
type ServiceCategory struct {
	// ID is the unique identifier for the category (UUID format).
	// Assigned at creation and never reused.
	ID string `json:"id"`

	// Name is the label shown on the bill (e.g., "Water Bill").
	// May be empty until the bill is validated.
	Name string `json:"name"`

	// Duration describes the billing period. Informational only.
	Duration string `json:"duration"`

	// Info is a free-text note such as a meter reading. Informational only.
	Info string `json:"info"`

	// BillType selects the apportionment rule for Amount.
	BillType BillType `json:"billType"`

	// Amount is the per-flat charge for single-flat categories and the
	// building total for all-building categories.
	Amount decimal.Decimal `json:"amount"`
}

// MarshalJSON writes Amount as a JSON number, the way bill files store it.
func (c ServiceCategory) MarshalJSON() ([]byte, error) {
	type category ServiceCategory
	return json.Marshal(struct {
		category
		Amount json.Number `json:"amount"`
	}{category(c), json.Number(c.Amount.String())})
}

// NewServiceCategory creates an empty category with a fresh ID.
func NewServiceCategory(billType BillType) ServiceCategory {
	return ServiceCategory{
		ID:       uuid.NewString(),
		BillType: billType,
		Amount:   decimal.Zero,
	}
}

// GarageSpace holds the building-wide parking allocation.
// Fees are flat per space and are not divided among flats.
type GarageSpace struct {
	// MotorcycleSpaces is the number of allocated motorcycle spaces.
	MotorcycleSpaces int `json:"motorcycleSpaces"`

	// MotorcycleSpaceAmount is the fee for one motorcycle space.
	MotorcycleSpaceAmount decimal.Decimal `json:"motorcycleSpaceAmount"`

	MotorcycleSpaceNotes string `json:"motorcycleSpaceNotes"`

	// CarSpaces is the number of allocated car spaces.
	CarSpaces int `json:"carSpaces"`

	// CarSpaceAmount is the fee for one car space.
	CarSpaceAmount decimal.Decimal `json:"carSpaceAmount"`

	CarSpaceNotes string `json:"carSpaceNotes"`
}

// MarshalJSON writes the fees as JSON numbers.
func (g GarageSpace) MarshalJSON() ([]byte, error) {
	type garage GarageSpace
	return json.Marshal(struct {
		garage
		MotorcycleSpaceAmount json.Number `json:"motorcycleSpaceAmount"`
		CarSpaceAmount        json.Number `json:"carSpaceAmount"`
	}{garage(g), json.Number(g.MotorcycleSpaceAmount.String()), json.Number(g.CarSpaceAmount.String())})
}

// BillData is the aggregate root for one building bill.
// It is created empty, filled in by the user, and read (never written) by the calculator.
type BillData struct {
	// Title is the heading of the bill (e.g., "Monthly Service Charge - January").
	Title string `json:"title"`

	// NumberOfFlats is the flat count used for division. Zero means unset.
	NumberOfFlats int `json:"numberOfFlats"`

	// Garage holds optional parking fees. Bills saved before garage support
	// decode with the zero value.
	Garage GarageSpace `json:"garage"`

	// PaymentInfo tells residents how to pay (bank account, mobile wallet).
	PaymentInfo string `json:"paymentInfo"`

	// Notes is free text printed at the bottom of the bill.
	Notes string `json:"notes"`

	// Categories are the expense line items in display order.
	Categories []ServiceCategory `json:"categories"`
}

// IsEmpty reports whether there is nothing worth saving in the bill.
func (b *BillData) IsEmpty() bool {
	return b.Title == "" && len(b.Categories) == 0
}
