package numeral

import (
	"strings"
	"testing"
	"unicode"

	"github.com/shopspring/decimal"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		amount int64
		lang   string
		want   string
	}{
		{0, "en", "0"},
		{999, "en", "999"},
		{5300, "en", "5,300"},
		{1234567, "en", "1,234,567"},
		{500, "bn", "৫০০"},
		{5300, "bn", "৫,৩০০"},
		{1234567, "bn", "১২,৩৪,৫৬৭"},
		{1234567, "xx", "1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.amount, tt.lang); got != tt.want {
				t.Errorf("FormatNumber(%d, %s) = %q, want %q", tt.amount, tt.lang, got, tt.want)
			}
		})
	}
}

func TestFormatNumberUsesLanguageDigits(t *testing.T) {
	got := FormatNumber(9876543210, "bn")
	for _, r := range got {
		if r >= '0' && r <= '9' {
			t.Fatalf("FormatNumber(bn) = %q still has ASCII digit %q", got, r)
		}
		if unicode.IsDigit(r) && !unicode.Is(unicode.Bengali, r) {
			t.Fatalf("FormatNumber(bn) = %q has non-Bengali digit %q", got, r)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.RequireFromString("1234.567")

	if got := Default.FormatAmount(amount, "en", Display{}); got != "1,235" {
		t.Errorf("0 digits = %q, want 1,235", got)
	}
	if got := Default.FormatAmount(amount, "en", Display{FractionDigits: 2}); got != "1,234.57" {
		t.Errorf("2 digits = %q, want 1,234.57", got)
	}
	if got := Default.FormatAmount(decimal.NewFromInt(10), "en", Display{FractionDigits: 2}); got != "10.00" {
		t.Errorf("padded digits = %q, want 10.00", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	d := WholeUnits("BDT")

	if got := Default.FormatCurrency(decimal.NewFromInt(5300), "en", d); got != "5,300 BDT" {
		t.Errorf("FormatCurrency(en) = %q, want 5,300 BDT", got)
	}
	if got := Default.FormatCurrency(decimal.NewFromInt(5300), "bn", d); !strings.HasSuffix(got, " BDT") {
		t.Errorf("FormatCurrency(bn) = %q, want BDT suffix", got)
	}
	if got := Default.FormatCurrency(decimal.NewFromInt(5), "en", Display{}); got != "5" {
		t.Errorf("FormatCurrency without currency = %q, want 5", got)
	}
}

func TestFormatAmountOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		lang   string
		digits int
		want   string
	}{
		{"beyond int64", "99999999999999999999", "en", 0, "99999999999999999999"},
		{"negative beyond int64", "-10000000000000000000001", "en", 0, "-10000000000000000000001"},
		{"bengali digits kept", "99999999999999999999", "bn", 0, "৯৯৯৯৯৯৯৯৯৯৯৯৯৯৯৯৯৯৯৯"},
		{"cents beyond float precision", "123456789012345.67", "en", 2, "123456789012345.67"},
		{"cents within float precision", "1234567890.12", "en", 2, "1,234,567,890.12"},
		{"largest int64 still grouped", "9223372036854775806", "en", 0, "9,223,372,036,854,775,806"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Default.FormatAmount(decimal.RequireFromString(tt.amount), tt.lang, Display{FractionDigits: tt.digits})
			if got != tt.want {
				t.Errorf("FormatAmount(%s, %s, %d) = %q, want %q", tt.amount, tt.lang, tt.digits, got, tt.want)
			}
		})
	}
}
