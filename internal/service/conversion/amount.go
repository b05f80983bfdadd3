package conversion

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"currency-converter/internal/models"
)

// parseAmount reads the longest decimal number at the start of amount,
// ignoring leading whitespace and whatever follows the number: "12abc" is 12.
// The result must be finite and non-negative.
func parseAmount(amount string) (float64, error) {
	s := strings.TrimLeftFunc(amount, isSpace)
	if s == "" {
		return 0, models.InvalidAmount(amount, "empty")
	}

	num := numericPrefix(s)
	if num == "" {
		if hasInfinityPrefix(s) {
			return 0, models.InvalidAmount(amount, "not a finite number")
		}
		return 0, models.InvalidAmount(amount, "not a number")
	}

	f, err := strconv.ParseFloat(num, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, models.InvalidAmount(amount, "not a number")
	}
	if math.IsInf(f, 0) {
		return 0, models.InvalidAmount(amount, "not a finite number")
	}
	if f < 0 {
		return 0, models.InvalidAmount(amount, "negative")
	}
	if f == 0 {
		// drops the sign of -0
		f = 0
	}
	return f, nil
}

// numericPrefix returns the longest prefix of s matching
// [+-]? (digits [. digits?] | . digits) ([eE] [+-]? digits)?
// or "" when s does not start with a number.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if n := countDigits(s[j:]); n > 0 {
			i = j + n
		}
	}
	return s[:i]
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func hasInfinityPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "Infinity")
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
