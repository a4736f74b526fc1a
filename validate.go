package betacode

import "unicode"

// literalChars are the passthrough characters the scanner recognizes
// besides letter codes, diacritic markers, and the capitalization
// marker: whitespace, punctuation, and the digits used by letter
// codes.
var literalChars = map[rune]bool{
	' ': true, '\n': true,
	'.': true, ',': true, '\'': true, ':': true, ';': true,
	'1': true, '2': true, '3': true, '5': true,
	'*': true, '#': true,
}

// Validate checks that input is strictly well-formed Betacode. It
// returns nil on success, or the single highest-precedence category of
// defect found, with every occurrence of that category collected in
// scan order:
//
//	*NotASCIIError > *InvalidDiacriticOrderError > *InvalidCharsError
//
// Validate never mutates or corrects input; Reorder is the recovery
// utility for order defects.
func Validate(input string) error {
	if err := checkASCII(input); err != nil {
		return err
	}
	if err := checkDiacriticOrder(input); err != nil {
		return err
	}
	return checkCharacters(input)
}

// ValidateAll runs every conformance check independently and returns
// all violated categories in precedence order. An empty result means
// the input is valid.
func ValidateAll(input string) []error {
	var errs []error
	if err := checkASCII(input); err != nil {
		errs = append(errs, err)
	}
	if err := checkDiacriticOrder(input); err != nil {
		errs = append(errs, err)
	}
	if err := checkCharacters(input); err != nil {
		errs = append(errs, err)
	}
	return errs
}

func checkASCII(input string) error {
	var chars []rune
	for _, r := range input {
		if r > unicode.MaxASCII {
			chars = append(chars, r)
		}
	}
	if len(chars) > 0 {
		return &NotASCIIError{Chars: chars}
	}
	return nil
}

func checkDiacriticOrder(input string) error {
	var sequences []string

	sc := NewScanner(input)
	for sc.Scan() {
		tok := sc.Token()
		if tok.Kind != TokenCluster {
			continue
		}
		cl := tok.Cluster
		ordered := ReorderDiacritics(cl.Diacritics)
		if markerString(ordered) != cl.Markers() || hasClassDuplicate(ordered) {
			sequences = append(sequences, cl.Markers())
		}
	}
	if len(sequences) > 0 {
		return &InvalidDiacriticOrderError{Sequences: sequences}
	}
	return nil
}

// hasClassDuplicate reports whether a canonically ordered sequence
// carries two diacritics of the same order class.
func hasClassDuplicate(ds []Diacritic) bool {
	for i := 1; i < len(ds); i++ {
		if ds[i].Class() == ds[i-1].Class() {
			return true
		}
	}
	return false
}

func checkCharacters(input string) error {
	var chars []rune

	sc := NewScanner(input)
	for sc.Scan() {
		tok := sc.Token()
		if tok.Kind != TokenLiteral {
			continue
		}
		r := []rune(tok.Literal)[0]
		if r > unicode.MaxASCII {
			continue // already the ASCII check's finding
		}
		// A diacritic here had no letter to attach to.
		if IsDiacritic(r) || !literalChars[r] {
			chars = append(chars, r)
		}
	}
	if len(chars) > 0 {
		return &InvalidCharsError{Chars: chars}
	}
	return nil
}
