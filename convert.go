package betacode

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Convert transliterates Betacode input into precomposed Greek
// Unicode. It is total: clusters the mapping table does not know, and
// characters that cannot start a cluster, pass through unchanged.
// Conversion tolerates out-of-order diacritics by normalizing every
// cluster before lookup; callers needing strict guarantees must run
// Validate first.
func Convert(input string) string {
	input = foldCase(input)

	var b strings.Builder
	b.Grow(len(input))

	sc := NewScanner(input)
	for sc.Scan() {
		tok := sc.Token()
		if tok.Kind == TokenLiteral {
			if g, ok := literalGreek[tok.Literal]; ok {
				b.WriteString(g)
			} else {
				b.WriteString(tok.Literal)
			}
			continue
		}

		cl := tok.Cluster
		marks := ReorderDiacritics(cl.Diacritics)
		if g, ok := lookupGrapheme(cl.Base, cl.Capital, marks); ok {
			b.WriteString(g)
		} else {
			b.WriteString(cl.Raw)
		}
	}

	return norm.NFC.String(finalSigma(b.String()))
}

// foldCase lowers historic all-caps Betacode. Text with no lowercase
// ASCII letters is folded wholesale; mixed-case text is left alone so
// its uppercase codes keep marking capitals. Only ASCII letters fold:
// passthrough characters are copied verbatim, never case-mapped.
func foldCase(s string) string {
	hasLower := strings.IndexFunc(s, func(r rune) bool {
		return r <= unicode.MaxASCII && unicode.IsLower(r)
	})
	if hasLower >= 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// finalSigma rewrites medial sigma to final sigma at word end: a σ
// whose follower is neither a letter nor a combining mark, or that
// ends the text.
func finalSigma(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r != 'σ' {
			continue
		}
		if i == len(runes)-1 || endsWord(runes[i+1]) {
			runes[i] = 'ς'
		}
	}
	return string(runes)
}

func endsWord(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r)
}
