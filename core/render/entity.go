package render

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// charRefPattern matches numeric character references, decimal or hex.
// Named references are not matched: no entity table is consulted and they
// pass through verbatim.
var charRefPattern = regexp.MustCompile(`&#(?:[0-9]+|[xX][0-9a-fA-F]+);`)

// decodeCharacterReferences replaces each numeric character reference with
// its code point. A reference that does not name a valid scalar value (a
// surrogate, or out of range) is left verbatim, delimiters included. The
// scan is left to right and non-overlapping.
func decodeCharacterReferences(s string) string {
	if !strings.Contains(s, "&#") {
		return s
	}
	return charRefPattern.ReplaceAllStringFunc(s, func(ref string) string {
		digits := ref[2 : len(ref)-1]
		base := 10
		if digits[0] == 'x' || digits[0] == 'X' {
			base = 16
			digits = digits[1:]
		}
		code, err := strconv.ParseUint(digits, base, 32)
		if err != nil || !utf8.ValidRune(rune(code)) {
			return ref
		}
		return string(rune(code))
	})
}
