package cli

import (
	"fmt"

	"github.com/mkarpinski/fakturnik/pkg/polish"
	"github.com/spf13/cobra"
)

var (
	vatNet    float64
	vatRate   int
	vatExempt bool
)

var validateCmd = &cobra.Command{
	Use: "validate",
}

var validateNIPCmd = &cobra.Command{
	Use:  "nip <numer>",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateNIP(args[0])
	},
}

var validateREGONCmd = &cobra.Command{
	Use:  "regon <numer>",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateREGON(args[0])
	},
}

var validateVATCmd = &cobra.Command{
	Use: "vat",
	RunE: func(cmd *cobra.Command, args []string) error {
		return calculateVAT()
	},
}

func init() {
	validateCmd.Short = getMessage("validate_short")
	validateCmd.Long = getMessage("validate_long")
	validateNIPCmd.Short = getMessage("validate_nip_short")
	validateREGONCmd.Short = getMessage("validate_regon_short")
	validateVATCmd.Short = getMessage("validate_vat_short")

	validateVATCmd.Flags().Float64Var(&vatNet, "net", 0, "kwota netto")
	validateVATCmd.Flags().IntVar(&vatRate, "rate", 23, "stawka VAT w procentach (0, 5, 8, 23)")
	validateVATCmd.Flags().BoolVar(&vatExempt, "exempt", false, "pozycja zwolniona z VAT (zw.)")

	validateCmd.AddCommand(validateNIPCmd)
	validateCmd.AddCommand(validateREGONCmd)
	validateCmd.AddCommand(validateVATCmd)
}

func validateNIP(input string) error {
	result := polish.ValidateNIP(input)

	if !result.IsValid {
		log.Warn("nip_invalid").
			Str("reason", result.Message).
			Send()
		return fmt.Errorf("%s", result.Message)
	}

	log.Info("nip_valid").
		Str("formatted", polish.FormatNIP(input)).
		Send()

	fmt.Println(passStyle.Render(fmt.Sprintf("NIP %s jest poprawny", polish.FormatNIP(input))))
	return nil
}

func validateREGON(input string) error {
	if !polish.ValidateREGON(input) {
		log.Warn("regon_invalid").Send()
		return fmt.Errorf("REGON %s jest niepoprawny", input)
	}

	log.Info("regon_valid").Send()
	fmt.Println(passStyle.Render(fmt.Sprintf("REGON %s jest poprawny", input)))
	return nil
}

func calculateVAT() error {
	rate := polish.Exempt
	if !vatExempt {
		var err error
		rate, err = polish.RateOf(vatRate)
		if err != nil {
			log.Error("vat_rate_invalid").
				Int("rate", vatRate).
				Send()
			return err
		}
	}

	breakdown := polish.CalculateVAT(vatNet, rate)

	log.Info("vat_calculated").
		Float64("net", breakdown.Net).
		Float64("vat", breakdown.VAT).
		Float64("gross", breakdown.Gross).
		Str("rate", rate.String()).
		Send()

	fmt.Printf("Netto:  %s\n", polish.FormatCurrency(breakdown.Net))
	fmt.Printf("VAT %s: %s\n", rate.String(), polish.FormatCurrency(breakdown.VAT))
	fmt.Printf("Brutto: %s\n", polish.FormatCurrency(breakdown.Gross))

	return nil
}
