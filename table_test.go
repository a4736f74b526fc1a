package betacode

import "testing"

func TestTable_PrecomposedValues(t *testing.T) {
	tests := []struct {
		base    BaseLetter
		capital bool
		marks   string
		want    string
	}{
		{"a", false, "", "α"},    // α
		{"a", false, ")/", "ἄ"},  // ἄ
		{"a", false, ")/|", "ᾄ"}, // ᾄ
		{"a", true, ")", "Ἀ"},    // Ἀ
		{"h", false, "=", "ῆ"},   // ῆ
		{"i", false, "+", "ϊ"},   // ϊ
		{"r", false, "(", "ῥ"},   // ῥ
		{"w", false, "=|", "ῷ"},  // ῷ
		{"a", false, "_", "ᾱ"},   // ᾱ
		{"#3", true, "", "Ϙ"},    // Ϙ
	}
	for _, tt := range tests {
		marks := make([]Diacritic, 0, len(tt.marks))
		for _, m := range tt.marks {
			marks = append(marks, Diacritic(m))
		}
		got, ok := lookupGrapheme(tt.base, tt.capital, marks)
		if !ok {
			t.Errorf("lookupGrapheme(%q, %v, %q): no entry", tt.base, tt.capital, tt.marks)
			continue
		}
		if got != tt.want {
			t.Errorf("lookupGrapheme(%q, %v, %q) = %q, want %q",
				tt.base, tt.capital, tt.marks, got, tt.want)
		}
	}
}

// Every combination the scanner can legally produce resolves to
// exactly one grapheme.
func TestTable_Total(t *testing.T) {
	lengths := []string{"", "_", "^"}
	breathings := []string{"", ")", "(", "+"}
	accents := []string{"", "/", "\\", "="}
	iotas := []string{"", "|"}

	for base := range lowerGreek {
		for _, capital := range []bool{false, true} {
			for _, l := range lengths {
				for _, b := range breathings {
					for _, a := range accents {
						for _, i := range iotas {
							markers := l + b + a + i
							marks := make([]Diacritic, 0, len(markers))
							for _, m := range markers {
								marks = append(marks, Diacritic(m))
							}
							if g, ok := lookupGrapheme(base, capital, marks); !ok || g == "" {
								t.Errorf("no grapheme for (%q, %v, %q)", base, capital, markers)
							}
						}
					}
				}
			}
		}
	}
}

func TestTable_UnknownCombination(t *testing.T) {
	// Two breathings never canonicalize into a table entry.
	if g, ok := lookupGrapheme("a", false, []Diacritic{SmoothBreathing, RoughBreathing}); ok {
		t.Errorf("lookupGrapheme doubled breathing = %q, want miss", g)
	}
}
