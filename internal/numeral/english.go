package numeral

var (
	englishOnes  = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	englishTeens = [...]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	englishTens  = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// englishWords composes numbers below 100 from ones, teens and tens.
type englishWords struct{}

func (englishWords) Zero() string     { return "Zero" }
func (englishWords) Negative() string { return "Negative" }

func (englishWords) BelowHundred(n int) string {
	switch {
	case n <= 0 || n > 99:
		return ""
	case n < 10:
		return englishOnes[n]
	case n < 20:
		return englishTeens[n-10]
	}
	if ones := n % 10; ones > 0 {
		return englishTens[n/10] + " " + englishOnes[ones]
	}
	return englishTens[n/10]
}

func (englishWords) Period(p Period) string {
	switch p {
	case Crore:
		return "Crore"
	case Lakh:
		return "Lakh"
	case Thousand:
		return "Thousand"
	default:
		return "Hundred"
	}
}
