package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount rounded to the given number of
// decimal places, e.g. 12.3456 with precision 2 returns "12.35".
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatCurrencyBRL renders an amount the way the dashboard displays money:
// "R$ 1.234,56" with a comma decimal separator and dot thousands grouping.
// Negative amounts render as "-R$ ...".
func FormatCurrencyBRL(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := "R$ " + grouped.String() + "," + fracPart
	if negative {
		return "-" + out
	}
	return out
}

// FormatDate renders a date as dd/MM/yyyy. A nil date renders empty.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
