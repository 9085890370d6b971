package model

import (
	"fmt"
	"regexp"
	"strconv"
)

var trailingDigits = regexp.MustCompile(`^(.*?)(\d+)$`)

// NextNumber increments the trailing numeric suffix of a document number,
// preserving its zero-padding width: "INV-0099" becomes "INV-0100",
// "INV-999" overflows to "INV-1000". Numbers without a trailing digit run
// get a literal "-1" appended.
func NextNumber(current string) string {
	m := trailingDigits.FindStringSubmatch(current)
	if m == nil {
		return current + "-1"
	}

	prefix, digits := m[1], m[2]
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// Digit run too long to parse; treat like a non-numeric suffix.
		return current + "-1"
	}

	return prefix + fmt.Sprintf("%0*d", len(digits), n+1)
}
