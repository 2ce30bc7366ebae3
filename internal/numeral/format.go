package numeral

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Display is the currency and precision used when rendering amounts.
// It is passed into each call rather than kept as package state.
type Display struct {
	// Currency is the ISO 4217 code appended by FormatCurrency (e.g., "BDT").
	Currency string

	// FractionDigits is the number of decimals shown. Bills use 0.
	FractionDigits int
}

// WholeUnits shows amounts without decimals.
func WholeUnits(currency string) Display {
	return Display{Currency: currency}
}

// FormatNumber renders a whole amount with the grouping and digits of lang,
// using the default registry. Bengali groups by lakh and crore: ১২,৩৪,৫৬৭.
func FormatNumber(amount int64, lang string) string {
	return Default.FormatAmount(decimal.NewFromInt(amount), lang, Display{})
}

// FormatAmount renders amount in lang with d.FractionDigits decimals.
// Grouping and separators come from CLDR via x/text; ASCII digits are then
// replaced with the language's digit glyphs. Amounts too large to format
// exactly are written without grouping rather than rounded.
func (r *Registry) FormatAmount(amount decimal.Decimal, lang string, d Display) string {
	l := r.Lookup(lang)

	digits := max(d.FractionDigits, 0)
	rounded := amount.Round(int32(digits))

	var value any
	switch {
	case digits == 0 && rounded.Abs().LessThan(maxInt64):
		value = rounded.IntPart()
	case digits > 0 && rounded.Shift(int32(digits)).Abs().LessThan(maxExactFloat):
		value = rounded.InexactFloat64()
	default:
		return l.transliterate(rounded.StringFixed(int32(digits)))
	}

	p := message.NewPrinter(l.Tag)
	s := p.Sprint(number.Decimal(value,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
	return l.transliterate(s)
}

var (
	// maxExactFloat is 2^53; integers below it are exact in a float64.
	maxExactFloat = decimal.NewFromInt(1 << 53)
	maxInt64      = decimal.NewFromInt(math.MaxInt64)
)

// FormatCurrency is FormatAmount followed by the currency code.
func (r *Registry) FormatCurrency(amount decimal.Decimal, lang string, d Display) string {
	s := r.FormatAmount(amount, lang, d)
	if d.Currency == "" {
		return s
	}
	return s + " " + d.Currency
}
