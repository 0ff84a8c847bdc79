package persona

import (
	"math/rand"
	"strconv"
	"strings"
)

// luhnCheckDigit computes the digit that makes partial+digit pass the
// Luhn check.
func luhnCheckDigit(partial string) int {
	sum := 0
	double := true
	for i := len(partial) - 1; i >= 0; i-- {
		d := int(partial[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

// ValidLuhn reports whether a card number passes the Luhn check.
func ValidLuhn(number string) bool {
	if number == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// cardNumber builds a Luhn-valid number of the given length from a
// scheme prefix.
func cardNumber(rng *rand.Rand, prefix string, length int) string {
	var b strings.Builder
	b.WriteString(prefix)
	for b.Len() < length-1 {
		b.WriteString(strconv.Itoa(rng.Intn(10)))
	}
	partial := b.String()
	return partial + strconv.Itoa(luhnCheckDigit(partial))
}
