package betacode

import (
	"sort"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// lowerGreek maps each base letter code to its lowercase Greek letter.
var lowerGreek = map[BaseLetter]rune{
	"a": 'α', "b": 'β', "c": 'ξ', "d": 'δ', "e": 'ε',
	"f": 'φ', "g": 'γ', "h": 'η', "i": 'ι', "k": 'κ',
	"l": 'λ', "m": 'μ', "n": 'ν', "o": 'ο', "p": 'π',
	"q": 'θ', "r": 'ρ', "s": 'σ', "t": 'τ', "u": 'υ',
	"v": 'ϝ', "w": 'ω', "x": 'χ', "y": 'ψ', "z": 'ζ',
	"#1": 'ϟ', // koppa
	"#2": 'ϛ', // stigma
	"#3": 'ϙ', // archaic koppa
	"#5": 'ϡ', // sampi
	"s1": 'ς', // forced final sigma
	"s2": 'ς',
	"s3": 'ϲ', // lunate sigma
}

// upperGreek maps each base letter code to its capital Greek letter.
var upperGreek = map[BaseLetter]rune{
	"a": 'Α', "b": 'Β', "c": 'Ξ', "d": 'Δ', "e": 'Ε',
	"f": 'Φ', "g": 'Γ', "h": 'Η', "i": 'Ι', "k": 'Κ',
	"l": 'Λ', "m": 'Μ', "n": 'Ν', "o": 'Ο', "p": 'Π',
	"q": 'Θ', "r": 'Ρ', "s": 'Σ', "t": 'Τ', "u": 'Υ',
	"v": 'Ϝ', "w": 'Ω', "x": 'Χ', "y": 'Ψ', "z": 'Ζ',
	"#1": 'Ϟ',
	"#2": 'Ϛ',
	"#3": 'Ϙ',
	"#5": 'Ϡ',
	"s1": 'Σ',
	"s2": 'Σ',
	"s3": 'Ϲ',
}

// combiningMarks maps each diacritic marker to its Unicode combining
// character.
var combiningMarks = map[Diacritic]rune{
	SmoothBreathing: '̓',
	RoughBreathing:  '̔',
	Diairesis:       '̈',
	AcuteAccent:     '́',
	GraveAccent:     '̀',
	Circumflex:      '͂',
	SubscriptIota:   'ͅ',
	LongMark:        '̄',
	ShortMark:       '̆',
}

// literalGreek maps passthrough punctuation that still changes shape in
// Greek text.
var literalGreek = map[string]string{
	";": "³",
	":": "·",
}

// mappingKey is the composite key of the grapheme table.
type mappingKey struct {
	base    BaseLetter
	capital bool
	marks   string // canonical diacritic marker string
}

// graphemes is the mapping table: every (base, capitalization,
// canonical diacritic combination) the scanner can legally produce has
// exactly one entry. Built once at init and read-only afterwards.
var graphemes map[mappingKey]string

// betacodeOf inverts graphemes (plus literalGreek) for Revert: NFC
// grapheme to the Betacode that produces it, capitals written with the
// asterisk marker. Where sigma codes collide on one grapheme the plain
// code wins, so Σ reverts to *s, not *s1.
var betacodeOf map[string]string

// reverseMax is the rune length of the longest betacodeOf key; some
// mark combinations have no precomposed form and span several runes.
var reverseMax int

func init() {
	lengths := []string{"", "_", "^"}
	breathings := []string{"", ")", "(", "+"}
	accents := []string{"", "/", "\\", "="}
	iotas := []string{"", "|"}

	bases := make([]BaseLetter, 0, len(lowerGreek))
	for base := range lowerGreek {
		bases = append(bases, base)
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })

	graphemes = make(map[mappingKey]string)
	betacodeOf = make(map[string]string)
	for _, base := range bases {
		for _, length := range lengths {
			for _, breathing := range breathings {
				for _, accent := range accents {
					for _, iota := range iotas {
						marks := length + breathing + accent + iota
						lower := compose(lowerGreek[base], marks)
						upper := compose(upperGreek[base], marks)
						graphemes[mappingKey{base, false, marks}] = lower
						graphemes[mappingKey{base, true, marks}] = upper
						reverseAdd(lower, string(base)+marks)
						reverseAdd(upper, "*"+string(base)+marks)
					}
				}
			}
		}
	}

	// Final sigma is a positional variant of σ, not a distinct code.
	betacodeOf["ς"] = "s"
	for code, greek := range literalGreek {
		betacodeOf[greek] = code
	}
}

// reverseAdd records a reverse mapping unless the grapheme already has
// one; base iteration order makes first-writer-wins deterministic.
func reverseAdd(grapheme, code string) {
	if _, ok := betacodeOf[grapheme]; ok {
		return
	}
	betacodeOf[grapheme] = code
	if n := utf8.RuneCountInString(grapheme); n > reverseMax {
		reverseMax = n
	}
}

// compose builds the precomposed grapheme for a letter and a canonical
// marker string.
func compose(letter rune, marks string) string {
	runes := []rune{letter}
	for _, m := range marks {
		runes = append(runes, combiningMarks[Diacritic(m)])
	}
	return norm.NFC.String(string(runes))
}

// lookupGrapheme resolves a cluster with canonically ordered diacritics
// to its output grapheme.
func lookupGrapheme(base BaseLetter, capital bool, marks []Diacritic) (string, bool) {
	g, ok := graphemes[mappingKey{base, capital, markerString(marks)}]
	return g, ok
}
