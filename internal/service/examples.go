package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/servicecharge/internal/models"
	"github.com/mmynk/servicecharge/internal/numeral"
)

type exampleCategory struct {
	name, duration, info string
	billType             models.BillType
	amount               int64
}

// exampleBill is the sample building used by the example command.
type exampleBill struct {
	title, paymentInfo, notes string
	categories                []exampleCategory
}

var exampleBills = map[string]exampleBill{
	numeral.CodeEnglish: {
		title: "Monthly Service Charge - January 2024",
		paymentInfo: `Bank: ABC Bank Limited
Account Name: Building Management Committee
Account Number: 1234567890
Bkash: +880 1712345678
Nagad: +880 1812345678`,
		notes: `Please pay by the 10th of each month.
Late payment fee: 50 BDT per day after the 15th.
For queries, contact: +880 1912345678`,
		categories: []exampleCategory{
			{"Electricity (Common Area)", "December 15, 2023 - January 15, 2024", "Bill No: 123456, Previous: 5000 units, Current: 5500 units", models.BillTypeAllBuilding, 5000},
			{"Water Bill", "January 2024", "WASA Bill for the entire building", models.BillTypeAllBuilding, 3000},
			{"Security Guard Salary", "January 2024", "2 guards @ 15,000 BDT each", models.BillTypeAllBuilding, 30000},
			{"Cleaning Service", "January 2024", "Daily cleaning of common areas", models.BillTypeAllBuilding, 8000},
			{"Generator Maintenance", "January 2024", "Monthly maintenance and fuel", models.BillTypeSingleFlat, 500},
			{"Building Insurance", "January 2024", "Annual premium (1/12th)", models.BillTypeAllBuilding, 2000},
		},
	},
	numeral.CodeBangla: {
		title: "মাসিক সার্ভিস চার্জ - জানুয়ারি ২০২৪",
		paymentInfo: `ব্যাংক: এবিসি ব্যাংক লিমিটেড
অ্যাকাউন্টের নাম: বিল্ডিং ম্যানেজমেন্ট কমিটি
অ্যাকাউন্ট নম্বর: ১২৩৪৫৬৭৮৯০
বিকাশ: +৮৮০ ১৭১২৩৪৫৬৭৮
নগদ: +৮৮০ ১৮১২৩৪৫৬৭৮`,
		notes: `অনুগ্রহ করে প্রতি মাসের ১০ তারিখের মধ্যে পেমেন্ট করুন।
বিলম্ব ফি: ১৫ তারিখের পর প্রতিদিন ৫০ টাকা।
যেকোনো প্রশ্নের জন্য যোগাযোগ: +৮৮০ ১৯১২৩৪৫৬৭৮`,
		categories: []exampleCategory{
			{"বিদ্যুৎ (কমন এরিয়া)", "১৫ ডিসেম্বর, ২০২৩ - ১৫ জানুয়ারি, ২০২৪", "বিল নং: ১২৩৪৫৬, পূর্ববর্তী: ৫০০০ ইউনিট, বর্তমান: ৫৫০০ ইউনিট", models.BillTypeAllBuilding, 5000},
			{"পানির বিল", "জানুয়ারি ২০২৪", "সম্পূর্ণ ভবনের জন্য ওয়াসা বিল", models.BillTypeAllBuilding, 3000},
			{"নিরাপত্তা প্রহরীর বেতন", "জানুয়ারি ২০২৪", "২ জন প্রহরী @ ১৫,০০০ টাকা করে", models.BillTypeAllBuilding, 30000},
			{"পরিষ্কার সেবা", "জানুয়ারি ২০২৪", "কমন এরিয়ার দৈনিক পরিষ্কার", models.BillTypeAllBuilding, 8000},
			{"জেনারেটর রক্ষণাবেক্ষণ", "জানুয়ারি ২০২৪", "মাসিক রক্ষণাবেক্ষণ এবং জ্বালানি", models.BillTypeSingleFlat, 500},
			{"ভবন বীমা", "জানুয়ারি ২০২৪", "বার্ষিক প্রিমিয়াম (১/১২ অংশ)", models.BillTypeAllBuilding, 2000},
		},
	},
}

// ExampleBill returns a filled-in sample bill for a ten-flat building in lang.
// Languages without a sample get the English one. Each call returns a new
// bill with fresh category IDs.
func ExampleBill(lang string) *models.BillData {
	ex, ok := exampleBills[numeral.Default.Lookup(lang).Code]
	if !ok {
		ex = exampleBills[numeral.CodeEnglish]
	}

	bill := &models.BillData{
		Title:         ex.title,
		NumberOfFlats: 10,
		PaymentInfo:   ex.paymentInfo,
		Notes:         ex.notes,
		Categories:    make([]models.ServiceCategory, 0, len(ex.categories)),
	}
	for _, c := range ex.categories {
		category := models.NewServiceCategory(c.billType)
		category.Name = c.name
		category.Duration = c.duration
		category.Info = c.info
		category.Amount = decimal.NewFromInt(c.amount)
		bill.Categories = append(bill.Categories, category)
	}
	return bill
}
