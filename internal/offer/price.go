package offer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var nonPriceChars = regexp.MustCompile(`[^0-9.,]`)

// ParsePrice extrae un precio numérico de las representaciones que devuelven
// los proveedores: "$1,299.50", "₹999", 12.5, etc. Commas are treated as
// thousands separators only; comma-decimal locales are out of scope and will
// misparse. Returns nil when no finite number can be extracted.
func ParsePrice(v any) *float64 {
	// Numbers pass through untouched. Formatting them first would reintroduce
	// exponent notation ("1e+06") and corrupt the character strip below.
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return finite(float64(n))
	case int64:
		return finite(float64(n))
	}

	s := nonPriceChars.ReplaceAllString(fmt.Sprint(v), "")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return finite(f)
}

func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

// currencyOf derives a currency marker from the raw price value by dropping
// digits, punctuation and whitespace, which leaves a symbol ("$", "₹") or a
// code ("USD") when the provider embeds one in the price string. Bare
// numbers carry no currency information.
func currencyOf(v any) *string {
	raw, ok := v.(string)
	if !ok {
		return nil
	}
	s := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if s == "" {
		return nil
	}
	return &s
}
