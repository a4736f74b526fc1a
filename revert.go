package betacode

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Revert transliterates polytonic Greek Unicode back into Betacode. It
// is Convert's inverse over canonical text: diacritics come out in
// canonical order, capitals carry the asterisk marker, and final sigma
// reverts to the plain letter code. Like Convert it is total; anything
// outside the mapping table passes through unchanged.
func Revert(input string) string {
	runes := []rune(norm.NFC.String(input))

	var b strings.Builder
	b.Grow(len(input))

	for i := 0; i < len(runes); {
		longest := reverseMax
		if rest := len(runes) - i; rest < longest {
			longest = rest
		}

		// Greedy longest match: unprecomposed graphemes span a
		// letter plus combining marks.
		matched := false
		for n := longest; n >= 1; n-- {
			if code, ok := betacodeOf[string(runes[i:i+n])]; ok {
				b.WriteString(code)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}
