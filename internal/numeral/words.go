package numeral

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Period is a South Asian numbering period.
type Period int

const (
	Hundred  Period = iota // 100
	Thousand               // 1,000
	Lakh                   // 1,00,000
	Crore                  // 1,00,00,000
)

// WordFormatter supplies the words one language needs to spell an amount.
// The crore/lakh/thousand/hundred decomposition is shared by every language.
type WordFormatter interface {
	// Zero is the word for 0.
	Zero() string

	// Negative is the prefix for amounts below zero.
	Negative() string

	// BelowHundred spells n for 1 <= n <= 99.
	BelowHundred(n int) string

	// Period is the word for a numbering period.
	Period(p Period) string
}

var croreSize = big.NewInt(10_000_000)

// NumberToWords spells amount in the given language using the default registry.
func NumberToWords(amount decimal.Decimal, lang string) string {
	return Default.NumberToWords(amount, lang)
}

// NumberToWordsInt is NumberToWords for whole amounts.
func NumberToWordsInt(amount int64, lang string) string {
	return Default.NumberToWords(decimal.NewFromInt(amount), lang)
}

// NumberToWords spells amount in lang. Fractions are rounded to the nearest
// whole unit; negative amounts get the language's negative prefix.
func (r *Registry) NumberToWords(amount decimal.Decimal, lang string) string {
	w := r.Lookup(lang).Words

	if amount.IsNegative() {
		return w.Negative() + " " + r.NumberToWords(amount.Neg(), lang)
	}

	n := amount.Round(0).BigInt()
	if n.Sign() == 0 {
		return w.Zero()
	}
	return spell(n, w)
}

// spell writes n > 0 as crore, lakh, thousand, hundred and remainder.
// Zero components are left out.
func spell(n *big.Int, w WordFormatter) string {
	crore, rest := new(big.Int).QuoRem(n, croreSize, new(big.Int))
	r := rest.Int64()

	lakh := int(r / 100_000)
	thousand := int(r % 100_000 / 1_000)
	hundred := int(r % 1_000 / 100)
	remainder := int(r % 100)

	var parts []string
	if crore.Sign() > 0 {
		parts = append(parts, spellCount(crore, w)+" "+w.Period(Crore))
	}
	if lakh > 0 {
		parts = append(parts, w.BelowHundred(lakh)+" "+w.Period(Lakh))
	}
	if thousand > 0 {
		parts = append(parts, w.BelowHundred(thousand)+" "+w.Period(Thousand))
	}
	if hundred > 0 {
		parts = append(parts, w.BelowHundred(hundred)+" "+w.Period(Hundred))
	}
	if remainder > 0 {
		parts = append(parts, w.BelowHundred(remainder))
	}
	return strings.Join(parts, " ")
}

// spellCount spells a crore count, which can exceed 99 for very large amounts.
func spellCount(n *big.Int, w WordFormatter) string {
	if n.IsInt64() && n.Int64() < 100 {
		return w.BelowHundred(int(n.Int64()))
	}
	return spell(n, w)
}
