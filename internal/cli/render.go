package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mmynk/servicecharge/internal/models"
	"github.com/mmynk/servicecharge/internal/service"
)

const blankField = "________"

// renderPreview prints a preview as plain text tables.
func renderPreview(w io.Writer, p *service.Preview) error {
	blank := p.Mode == models.FormModeBlank

	fmt.Fprintln(w, p.Title)
	fmt.Fprintln(w, strings.Repeat("=", max(len([]rune(p.Title)), 10)))
	flats := p.NumberOfFlats
	if flats == "" {
		flats = blankField
	}
	fmt.Fprintf(w, "Flats: %s\n\n", flats)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Category\tDuration\tInfo\tCalculation\tPer flat")
	for _, r := range p.Rows {
		calc, perFlat := r.Calculation, r.PerFlat
		if blank {
			calc, perFlat = blankField, blankField
		}
		if r.SingleFlat {
			calc = "single flat: " + calc
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.Duration, r.Info, calc, perFlat)
	}
	if blank {
		fmt.Fprintf(tw, "\t\t\tPer flat total:\t%s\n", blankField)
		fmt.Fprintf(tw, "\t\t\tTotal:\t%s\n", blankField)
	} else {
		fmt.Fprintf(tw, "\t\t\tPer flat total:\t%s\n", p.PerFlatTotal)
		fmt.Fprintf(tw, "\t\t\tTotal (%s flats):\t%s\n", p.NumberOfFlats, p.GrandTotal)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !blank {
		fmt.Fprintf(w, "\nIn words (per flat): %s\n", p.PerFlatTotalWords)
		fmt.Fprintf(w, "In words (total): %s\n", p.GrandTotalWords)
	}

	if p.Garage != nil {
		if err := renderGarage(w, p.Garage); err != nil {
			return err
		}
	}

	if p.PaymentInfo != "" {
		fmt.Fprintf(w, "\nPayment information\n%s\n", p.PaymentInfo)
	}
	if p.Notes != "" {
		fmt.Fprintf(w, "\nNotes\n%s\n", p.Notes)
	}
	return nil
}

func renderGarage(w io.Writer, g *service.GaragePreview) error {
	fmt.Fprintln(w, "\nGarage")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Space\tCount\tFee\tCollection\tNotes")
	fmt.Fprintf(tw, "Motorcycle\t%s\t%s\t%s\t%s\n", g.MotorcycleSpaces, g.MotorcycleFee, g.MotorcycleCollection, g.MotorcycleNotes)
	fmt.Fprintf(tw, "Car\t%s\t%s\t%s\t%s\n", g.CarSpaces, g.CarFee, g.CarCollection, g.CarNotes)
	fmt.Fprintf(tw, "\t\tGarage total:\t%s\t\n", g.Collection)
	fmt.Fprintf(tw, "\t\tPer flat with motorcycle:\t%s\t\n", g.TotalWithMotorcycle)
	fmt.Fprintf(tw, "\t\tPer flat with car:\t%s\t\n", g.TotalWithCar)
	fmt.Fprintf(tw, "\t\tPer flat with both:\t%s\t\n", g.TotalWithBoth)
	fmt.Fprintf(tw, "\t\tFlats and garage:\t%s\t\n", g.Combined)
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "In words (flats and garage): %s\n", g.CombinedWords)
	return nil
}
