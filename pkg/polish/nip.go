// Package polish validates and formats Polish business data: NIP and REGON
// identifiers, VAT calculations, currency amounts and dates. All functions
// are pure and synchronous; validators return a ValidationResult instead of
// an error so callers can surface the message next to a form field.
package polish

import (
	"fmt"

	"github.com/mkarpinski/fakturnik/pkg/utils"
)

// ValidationResult carries the outcome of a validation. Message is empty
// when the input is valid, otherwise it is user-facing Polish text.
type ValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
}

const (
	MsgNIPFormat   = "NIP musi składać się z 10 cyfr"
	MsgNIPChecksum = "Nieprawidłowa suma kontrolna NIP"
)

var nipWeights = []int{6, 5, 7, 2, 3, 4, 5, 6, 7}

// ValidateNIP checks a Polish tax identification number. The format check
// runs before any checksum math: empty input and non-digit characters fail
// with MsgNIPFormat, never with MsgNIPChecksum.
func ValidateNIP(input string) ValidationResult {
	cleaned := utils.CleanDigits(input)
	if len(cleaned) != 10 || !utils.AllDigits(cleaned) {
		return ValidationResult{IsValid: false, Message: MsgNIPFormat}
	}

	expected := utils.CheckDigit(utils.WeightedChecksum(cleaned, nipWeights))
	if utils.DigitAt(cleaned, 9) != expected {
		return ValidationResult{IsValid: false, Message: MsgNIPChecksum}
	}

	return ValidationResult{IsValid: true}
}

// FormatNIP renders a 10-digit NIP as DDD-DDD-DD-DD, ignoring any separators
// already present. Input that does not clean up to 10 digits is returned
// unchanged.
func FormatNIP(input string) string {
	cleaned := utils.CleanDigits(input)
	if len(cleaned) != 10 || !utils.AllDigits(cleaned) {
		return input
	}
	return fmt.Sprintf("%s-%s-%s-%s", cleaned[0:3], cleaned[3:6], cleaned[6:8], cleaned[8:10])
}
