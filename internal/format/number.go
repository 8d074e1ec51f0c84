package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatGrouped formats v like ToFixed and adds thousand separators to the
// integer part. Example: FormatGrouped(12345.678, 1) returns "12,345.7".
func FormatGrouped(v float64, digits int) string {
	fixed := ToFixed(v, digits)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	grouped := groupDigits(intPart)
	if hasFrac {
		return sign + grouped + "." + frac
	}
	return sign + grouped
}

// groupDigits inserts thousand separators into a string of decimal digits.
// Integer parts that fit in int64 go through the printer; longer ones are
// grouped by hand.
func groupDigits(s string) string {
	const maxInt64Digits = 18
	if len(s) == 0 {
		return s
	}
	if len(s) <= maxInt64Digits {
		var n int64
		for _, c := range s {
			if c < '0' || c > '9' {
				return s
			}
			n = n*10 + int64(c-'0')
		}
		return printer.Sprintf("%d", n)
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
