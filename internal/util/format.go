package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/Da20-Costa/mybudget/internal/i18n"
)

// FormatCurrency formats value for the given UI language:
// en -> $1,234.56, pt -> R$ 1.234,56.
func FormatCurrency(lang string, value float64) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, decPart, _ := strings.Cut(s, ".")

	if lang == i18n.LangPT {
		formatted := groupThousands(intPart, ".") + "," + decPart
		if neg {
			formatted = "-" + formatted
		}
		return "R$ " + formatted
	}

	formatted := groupThousands(intPart, ",") + "." + decPart
	if neg {
		formatted = "-" + formatted
	}
	return "$" + formatted
}

// groupThousands inserts sep every three digits from the right.
func groupThousands(digits, sep string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDate formats t for the given UI language:
// en -> MM/DD/YYYY, pt -> DD/MM/YYYY.
func FormatDate(lang string, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if lang == i18n.LangPT {
		return t.Format("02/01/2006")
	}
	return t.Format("01/02/2006")
}

// MonthKey returns the "YYYY-MM" key for t. Zero-padded, so lexical
// comparison of keys equals chronological comparison.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
