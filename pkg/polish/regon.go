package polish

import "github.com/mkarpinski/fakturnik/pkg/utils"

var (
	regonWeights9  = []int{8, 9, 2, 3, 4, 5, 6, 7}
	regonWeights14 = []int{2, 4, 8, 5, 0, 9, 7, 3, 6, 1, 2, 4, 8}
)

// ValidateREGON checks a 9- or 14-digit business registry number. A 14-digit
// REGON embeds a 9-digit one as its prefix; both checksums must hold.
func ValidateREGON(input string) bool {
	cleaned := utils.CleanDigits(input)
	if !utils.AllDigits(cleaned) {
		return false
	}

	switch len(cleaned) {
	case 9:
		return regonChecksumOK(cleaned, regonWeights9, 8)
	case 14:
		return regonChecksumOK(cleaned[:9], regonWeights9, 8) &&
			regonChecksumOK(cleaned, regonWeights14, 13)
	default:
		return false
	}
}

func regonChecksumOK(digits string, weights []int, checkIndex int) bool {
	expected := utils.CheckDigit(utils.WeightedChecksum(digits, weights))
	return utils.DigitAt(digits, checkIndex) == expected
}
