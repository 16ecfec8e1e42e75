package polish

import (
	"fmt"
	"math"
)

// VATRate is a tagged value: either one of the closed set of Polish rates
// (0%, 5%, 8%, 23%) or the exempt status. The zero value is the 0% rate;
// exempt invoices carry no percentage at all.
type VATRate struct {
	exempt  bool
	percent int
}

// Exempt marks an invoice line as VAT-exempt ("zw.").
var Exempt = VATRate{exempt: true}

var allowedVATRates = map[int]bool{0: true, 5: true, 8: true, 23: true}

// RateOf returns the VATRate for an allowed Polish percentage. Anything
// outside {0, 5, 8, 23} is a programming error in the caller (the UI only
// ever offers allowed rates) and is rejected with an error.
func RateOf(percent int) (VATRate, error) {
	if !allowedVATRates[percent] {
		return VATRate{}, fmt.Errorf("nieobsługiwana stawka VAT: %d%%", percent)
	}
	return VATRate{percent: percent}, nil
}

func (r VATRate) IsExempt() bool {
	return r.exempt
}

func (r VATRate) Percent() int {
	if r.exempt {
		return 0
	}
	return r.percent
}

func (r VATRate) String() string {
	if r.exempt {
		return "zw."
	}
	return fmt.Sprintf("%d%%", r.percent)
}

// VATBreakdown holds the rounded amounts of one VAT calculation.
type VATBreakdown struct {
	Net   float64 `json:"net"`
	VAT   float64 `json:"vat"`
	Gross float64 `json:"gross"`
}

// CalculateVAT computes the VAT and gross amounts for a net amount. The net
// input may carry more than two decimals; every output value is rounded
// half-up to two decimal places.
func CalculateVAT(net float64, rate VATRate) VATBreakdown {
	vat := Round2(net * float64(rate.Percent()) / 100)
	return VATBreakdown{
		Net:   Round2(net),
		VAT:   vat,
		Gross: Round2(net + vat),
	}
}

// Round2 rounds half-up to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
