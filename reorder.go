package betacode

import (
	"sort"
	"strings"
)

// ReorderDiacritics returns a cluster's diacritics in canonical order:
// length mark, breathing or diairesis, accent, subscript iota. The sort
// is stable, so illegal same-class pairs keep their first-seen order.
// The input slice is not modified.
func ReorderDiacritics(ds []Diacritic) []Diacritic {
	out := make([]Diacritic, len(ds))
	copy(out, ds)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Class() < out[j].Class()
	})
	return out
}

// Reorder rewrites every cluster in input so its diacritic markers
// appear in canonical order, leaving everything else untouched. It is
// the recovery step for text that fails validation only on diacritic
// order: Reorder output converts identically but also validates.
func Reorder(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	sc := NewScanner(input)
	for sc.Scan() {
		tok := sc.Token()
		if tok.Kind == TokenLiteral {
			b.WriteString(tok.Literal)
			continue
		}
		cl := tok.Cluster
		ordered := ReorderDiacritics(cl.Diacritics)
		// Raw ends with the marker substring; swap it for the
		// canonical one.
		b.WriteString(cl.Raw[:len(cl.Raw)-len(cl.Diacritics)])
		b.WriteString(markerString(ordered))
	}
	return b.String()
}
