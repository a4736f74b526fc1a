package betacode

import "unicode"

// Scanner splits an input string into letter clusters and literal
// runes, left to right. It is lazy and finite; construct a new Scanner
// (or call Reset) to restart over the same input.
//
// The scanner records diacritics in the order it sees them and never
// judges that order; ordering is the concern of ReorderDiacritics and
// Validate.
type Scanner struct {
	src []rune
	pos int
	tok Token
}

// NewScanner returns a Scanner over input.
func NewScanner(input string) *Scanner {
	return &Scanner{src: []rune(input)}
}

// Reset rewinds the scanner to the start of its input.
func (s *Scanner) Reset() {
	s.pos = 0
	s.tok = Token{}
}

// Scan advances to the next token. It returns false when the input is
// exhausted.
func (s *Scanner) Scan() bool {
	if s.pos >= len(s.src) {
		return false
	}

	start := s.pos
	capital := false

	// A capitalization marker binds only when a letter code follows;
	// otherwise the asterisk is a literal.
	if s.src[s.pos] == '*' {
		if _, size, _ := s.letterAt(s.pos + 1); size > 0 {
			capital = true
			s.pos++
		} else {
			s.pos++
			s.tok = Token{Kind: TokenLiteral, Literal: "*"}
			return true
		}
	}

	base, size, upper := s.letterAt(s.pos)
	if size == 0 {
		r := s.src[s.pos]
		s.pos++
		s.tok = Token{Kind: TokenLiteral, Literal: string(r)}
		return true
	}
	s.pos += size

	var marks []Diacritic
	for s.pos < len(s.src) && IsDiacritic(s.src[s.pos]) {
		marks = append(marks, Diacritic(s.src[s.pos]))
		s.pos++
	}

	s.tok = Token{
		Kind: TokenCluster,
		Cluster: Cluster{
			Base:       base,
			Capital:    capital || upper,
			Diacritics: marks,
			Raw:        string(s.src[start:s.pos]),
		},
	}
	return true
}

// Token returns the token produced by the last call to Scan.
func (s *Scanner) Token() Token { return s.tok }

// letterAt recognizes a base letter code starting at pos. It returns
// the lowercase code, the number of runes consumed (0 if none), and
// whether the code itself was uppercase.
func (s *Scanner) letterAt(pos int) (BaseLetter, int, bool) {
	if pos >= len(s.src) {
		return "", 0, false
	}
	r := s.src[pos]

	// Archaic letters are written #1, #2, #3, #5.
	if r == '#' && pos+1 < len(s.src) {
		code := BaseLetter([]rune{'#', s.src[pos+1]})
		if _, ok := lowerGreek[code]; ok {
			return code, 2, false
		}
		return "", 0, false
	}

	if r > unicode.MaxASCII || !unicode.IsLetter(r) {
		return "", 0, false
	}
	upper := unicode.IsUpper(r)
	lower := unicode.ToLower(r)

	// Sigma variant codes s1, s2, s3 consume their digit.
	if lower == 's' && pos+1 < len(s.src) {
		code := BaseLetter([]rune{'s', s.src[pos+1]})
		if _, ok := lowerGreek[code]; ok {
			return code, 2, upper
		}
	}

	code := BaseLetter(lower)
	if _, ok := lowerGreek[code]; !ok {
		return "", 0, false // 'j' has no Greek identity
	}
	return code, 1, upper
}
