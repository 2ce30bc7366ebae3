package numeral

// Every Bengali number below 100 is its own word, so they are listed in full.
var banglaBelowHundred = [100]string{
	"", "এক", "দুই", "তিন", "চার", "পাঁচ", "ছয়", "সাত", "আট", "নয়",
	"দশ", "এগারো", "বারো", "তেরো", "চৌদ্দ", "পনেরো", "ষোলো", "সতেরো", "আঠারো", "উনিশ",
	"বিশ", "একুশ", "বাইশ", "তেইশ", "চব্বিশ", "পঁচিশ", "ছাব্বিশ", "সাতাশ", "আটাশ", "ঊনতিরিশ",
	"তিরিশ", "একত্রিশ", "বত্রিশ", "তেত্রিশ", "চৌত্রিশ", "পঁয়তিরিশ", "ছত্রিশ", "সাঁইতিরিশ", "আটত্রিশ", "ঊনচল্লিশ",
	"চল্লিশ", "একচল্লিশ", "বিয়াল্লিশ", "তেতাল্লিশ", "চুয়াল্লিশ", "পঁয়তাল্লিশ", "ছেচল্লিশ", "সাতচল্লিশ", "আটচল্লিশ", "ঊনপঞ্চাশ",
	"পঞ্চাশ", "একান্ন", "বাহান্ন", "তিপ্পান্ন", "চুয়ান্ন", "পঞ্চান্ন", "ছাপ্পান্ন", "সাতান্ন", "আটান্ন", "ঊনষাট",
	"ষাট", "একষট্টি", "বাষট্টি", "তেষট্টি", "চৌষট্টি", "পঁয়সট্টি", "ছেষট্টি", "সাতষট্টি", "আটষট্টি", "ঊনসত্তর",
	"সত্তর", "একাত্তর", "বাহাত্তর", "তিয়াত্তর", "চুয়াত্তর", "পঁচাত্তর", "ছিয়াত্তর", "সাতাত্তর", "আটাত্তর", "ঊনআশি",
	"আশি", "একাশি", "বিরাশি", "তিরাশি", "চুরাশি", "পঁচাশি", "ছিয়াশি", "সাতাশি", "আটাশি", "ঊননব্বই",
	"নব্বই", "একানব্বই", "বিরানব্বই", "তিরানব্বই", "চুরানব্বই", "পঁচানব্বই", "ছিয়ানব্বই", "সাতানব্বই", "আটানব্বই", "নিরানব্বই",
}

// banglaWords looks numbers below 100 up in banglaBelowHundred.
type banglaWords struct{}

func (banglaWords) Zero() string     { return "শূন্য" }
func (banglaWords) Negative() string { return "ঋণাত্মক" }

func (banglaWords) BelowHundred(n int) string {
	if n <= 0 || n > 99 {
		return ""
	}
	return banglaBelowHundred[n]
}

func (banglaWords) Period(p Period) string {
	switch p {
	case Crore:
		return "কোটি"
	case Lakh:
		return "লক্ষ"
	case Thousand:
		return "হাজার"
	default:
		return "শত"
	}
}
