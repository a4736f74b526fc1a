package betacode

// BaseLetter identifies a Greek letter by its lowercase Betacode code:
// a single ASCII letter for the standard alphabet, "#"+digit for the
// archaic letters (koppa, stigma, archaic koppa, sampi), or "s"+digit
// for the explicit sigma variants.
type BaseLetter string

// Diacritic is a single Betacode diacritic marker.
type Diacritic rune

// Diacritic markers understood by the scanner.
const (
	SmoothBreathing Diacritic = ')'
	RoughBreathing  Diacritic = '('
	Diairesis       Diacritic = '+'
	AcuteAccent     Diacritic = '/'
	GraveAccent     Diacritic = '\\'
	Circumflex      Diacritic = '='
	SubscriptIota   Diacritic = '|'
	LongMark        Diacritic = '_'
	ShortMark       Diacritic = '^'
)

// OrderClass is the precedence tier a diacritic belongs to. Canonical
// order within a cluster is ascending class; at most one diacritic per
// class is well formed.
type OrderClass int

const (
	ClassLength    OrderClass = iota // vowel length, innermost mark
	ClassBreathing                   // breathing or diairesis
	ClassAccent
	ClassIota
)

var diacriticClasses = map[Diacritic]OrderClass{
	LongMark:        ClassLength,
	ShortMark:       ClassLength,
	SmoothBreathing: ClassBreathing,
	RoughBreathing:  ClassBreathing,
	Diairesis:       ClassBreathing,
	AcuteAccent:     ClassAccent,
	GraveAccent:     ClassAccent,
	Circumflex:      ClassAccent,
	SubscriptIota:   ClassIota,
}

// Class returns the diacritic's order class.
func (d Diacritic) Class() OrderClass { return diacriticClasses[d] }

// IsDiacritic reports whether r is a recognized diacritic marker.
func IsDiacritic(r rune) bool {
	_, ok := diacriticClasses[Diacritic(r)]
	return ok
}

// Cluster is the atomic unit of conversion and validation: one base
// letter, its capitalization, and its trailing diacritics in the order
// they were scanned.
type Cluster struct {
	Base       BaseLetter
	Capital    bool
	Diacritics []Diacritic
	Raw        string // original input substring, for passthrough
}

// Markers returns the cluster's diacritics as the marker substring they
// appeared as in the input.
func (c Cluster) Markers() string {
	return markerString(c.Diacritics)
}

func markerString(ds []Diacritic) string {
	b := make([]byte, len(ds))
	for i, d := range ds {
		b[i] = byte(d)
	}
	return string(b)
}

// TokenKind discriminates scanner tokens.
type TokenKind int

const (
	TokenCluster TokenKind = iota // a letter cluster
	TokenLiteral                  // a single passthrough rune
)

// Token is one unit emitted by the Scanner: either a letter cluster or
// a literal rune (whitespace, punctuation, or anything that cannot
// start a cluster).
type Token struct {
	Kind    TokenKind
	Cluster Cluster
	Literal string
}
