package utils

import "strings"

// CleanDigits strips spaces, dashes and non-breaking spaces commonly used as
// separators in Polish identifiers and amounts.
func CleanDigits(input string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "\u00a0", "")
	return replacer.Replace(input)
}

func AllDigits(input string) bool {
	if input == "" {
		return false
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func DigitAt(input string, index int) int {
	return int(input[index] - '0')
}

// WeightedChecksum applies the given weights to the leading digits of input
// and returns the sum mod 11. Polish identifier checksums treat a result of
// 10 as 0, which CheckDigit handles.
func WeightedChecksum(input string, weights []int) int {
	sum := 0
	for i, weight := range weights {
		sum += DigitAt(input, i) * weight
	}
	return sum % 11
}

func CheckDigit(mod int) int {
	if mod == 10 {
		return 0
	}
	return mod
}
