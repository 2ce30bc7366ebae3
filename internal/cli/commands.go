package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/servicecharge/internal/middleware"
	"github.com/mmynk/servicecharge/internal/models"
	"github.com/mmynk/servicecharge/internal/numeral"
	"github.com/mmynk/servicecharge/internal/service"
)

func (a *app) summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <bill.json>",
		Short: "Calculate per-flat and grand totals for a bill",
		Example: `  # Totals with amounts in words
  servicecharge summary january.json

  # Machine-readable summary
  servicecharge summary january.json --json`,
		Args: cobra.ExactArgs(1),
	}
	asJSON := cmd.Flags().Bool("json", false, "Print the summary as JSON")

	cmd.RunE = middleware.Logging(func(cmd *cobra.Command, args []string) error {
		bill, err := service.ReadBillFile(args[0])
		if err != nil {
			return err
		}
		return a.printSummary(cmd.OutOrStdout(), bill, *asJSON)
	})
	return cmd
}

func (a *app) printSummary(w io.Writer, bill *models.BillData, asJSON bool) error {
	svc := a.service()
	summary, err := svc.Summarize(bill)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	lang := a.cfg.Language
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	line := func(label string, amount int64) {
		d := decimal.NewFromInt(amount)
		fmt.Fprintf(tw, "%s:\t%s\t%s\n", label, svc.Format(d, lang), svc.Words(d, lang))
	}

	fmt.Fprintln(tw, bill.Title)
	line("Per flat", summary.PerFlatTotal)
	line(fmt.Sprintf("Total (%s flats)", svc.FormatNumber(int64(bill.NumberOfFlats), lang)), summary.GrandTotal)
	if bill.Garage.MotorcycleSpaceAmount.IsPositive() || bill.Garage.CarSpaceAmount.IsPositive() {
		line("Per flat with motorcycle", summary.TotalWithMotorcycle)
		line("Per flat with car", summary.TotalWithCar)
		line("Per flat with both", summary.TotalWithBoth)
	}
	return tw.Flush()
}

func (a *app) previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <bill.json>",
		Short: "Print the full bill as residents will see it",
		Example: `  # Bill in Bangla
  servicecharge preview january.json --lang bn

  # Printable blank form from the same categories
  servicecharge preview january.json --mode blank`,
		Args: cobra.ExactArgs(1),
	}
	mode := cmd.Flags().String("mode", string(models.FormModeCalculated), "Form mode: calculated or blank")

	cmd.RunE = middleware.Logging(func(cmd *cobra.Command, args []string) error {
		bill, err := service.ReadBillFile(args[0])
		if err != nil {
			return err
		}
		p, err := a.service().Preview(bill, models.ParseFormMode(*mode), a.cfg.Language)
		if err != nil {
			return err
		}
		return renderPreview(cmd.OutOrStdout(), p)
	})
	return cmd
}

func (a *app) wordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <amount>",
		Short: "Spell an amount in words",
		Example: `  servicecharge words 125000 --lang en
  # One Lakh Twenty Five Thousand`,
		Args: cobra.ExactArgs(1),
		RunE: middleware.Logging(func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.service().Words(amount, a.cfg.Language))
			return nil
		}),
	}
}

func (a *app) formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <amount>",
		Short: "Format an amount with the language's grouping and digits",
		Example: `  servicecharge format 1234567 --lang bn
  # ১২,৩৪,৫৬৭`,
		Args: cobra.ExactArgs(1),
	}
	digits := cmd.Flags().Int("digits", 0, "Number of fraction digits")
	withCurrency := cmd.Flags().Bool("currency", false, "Append the currency code")

	cmd.RunE = middleware.Logging(func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}
		if *digits < 0 {
			return fmt.Errorf("digits must not be negative")
		}

		d := numeral.Display{FractionDigits: *digits}
		if *withCurrency {
			d.Currency = a.cfg.Currency
		}
		fmt.Fprintln(cmd.OutOrStdout(), numeral.Default.FormatCurrency(amount, a.cfg.Language, d))
		return nil
	})
	return cmd
}

func (a *app) exampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a sample bill to start from",
		Example: `  servicecharge example --lang en > january.json
  servicecharge example --save`,
		Args: cobra.NoArgs,
	}
	save := cmd.Flags().Bool("save", false, "Also store the sample as the calculated draft")

	cmd.RunE = middleware.Logging(func(cmd *cobra.Command, args []string) error {
		bill := service.ExampleBill(a.cfg.Language)
		if *save {
			svc, err := a.draftService()
			if err != nil {
				return err
			}
			if err := svc.SaveDraft(cmd.Context(), models.FormModeCalculated, bill); err != nil {
				return err
			}
		}
		return writeJSON(cmd.OutOrStdout(), bill)
	})
	return cmd
}

func (a *app) languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: middleware.Logging(func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, l := range numeral.Default.Languages() {
				marker := ""
				if l.Code == numeral.Default.Lookup(a.cfg.Language).Code {
					marker = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Code, l.Name, l.NativeName, marker)
			}
			return tw.Flush()
		}),
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !models.WithinRange(amount) {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, service.ErrAmountTooLarge)
	}
	return amount, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
