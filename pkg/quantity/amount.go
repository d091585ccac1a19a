package quantity

import (
	"strconv"
	"strings"
)

// ParseAmount parses a numeric amount token. It accepts plain decimals
// ("2", "1.5") and integer fractions ("3/4"). Returns an error for any
// other text.
func ParseAmount(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		a, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		b, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, err
		}
		return a / b, nil
	}
	return strconv.ParseFloat(s, 64)
}

// formatAmount renders a number the way it appears in recipe text: the
// shortest decimal form that parses back to the same value ("2", not "2.0").
func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
