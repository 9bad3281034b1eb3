package intake

import (
	"fmt"
	"unicode"
)

// NormalizePhone reduces raw input to its decimal digits, discarding
// letters, punctuation, and whitespace. Exactly ten digits come back
// US-formatted as (AAA) BBB-CCCC; any other count comes back as the bare
// digit string, and no digits at all yields "".
func NormalizePhone(raw string) string {
	var digits []rune
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return ""
	}
	if len(digits) == 10 {
		return fmt.Sprintf("(%s) %s-%s", string(digits[0:3]), string(digits[3:6]), string(digits[6:10]))
	}
	return string(digits)
}
