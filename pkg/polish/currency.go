package polish

import (
	"math"
	"strconv"
	"strings"
)

// CurrencyLocale makes the formatting conventions explicit instead of
// assuming them globally. PLN is the default everywhere in the invoicing
// application.
type CurrencyLocale struct {
	Decimal rune
	Group   rune
	Symbol  string
}

var PLN = CurrencyLocale{Decimal: ',', Group: ' ', Symbol: "zł"}

// FormatCurrency renders an amount per Polish convention: comma decimal
// separator, space-separated thousands, trailing currency symbol, always two
// decimal digits. Negative amounts keep the minus before the first digit.
func FormatCurrency(amount float64) string {
	return FormatCurrencyIn(amount, PLN)
}

func FormatCurrencyIn(amount float64, loc CurrencyLocale) string {
	formatted := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(formatted, ".")

	var b strings.Builder
	if amount < 0 {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart, loc.Group))
	b.WriteRune(loc.Decimal)
	b.WriteString(fracPart)
	if loc.Symbol != "" {
		b.WriteByte(' ')
		b.WriteString(loc.Symbol)
	}
	return b.String()
}

func groupThousands(digits string, sep rune) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseCurrency is the inverse of FormatCurrency. The empty string parses to
// 0; anything that is not a number after stripping the symbol and separators
// yields NaN rather than an error, because form callers branch on NaN while
// validators branch on ValidationResult.
func ParseCurrency(text string) float64 {
	return ParseCurrencyIn(text, PLN)
}

func ParseCurrencyIn(text string, loc CurrencyLocale) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	trimmed = strings.TrimSuffix(trimmed, loc.Symbol)
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.ReplaceAll(trimmed, string(loc.Group), "")
	trimmed = strings.ReplaceAll(trimmed, "\u00a0", "")
	trimmed = strings.ReplaceAll(trimmed, string(loc.Decimal), ".")

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}
