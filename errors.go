package betacode

import "fmt"

// NotASCIIError reports every character outside the ASCII range, in
// order of appearance. Occurrences are not deduplicated.
type NotASCIIError struct {
	Chars []rune
}

func (e *NotASCIIError) Error() string {
	return fmt.Sprintf("non-ASCII characters %q", e.Chars)
}

// InvalidCharsError reports every ASCII character the scanner and
// mapping table do not understand, in order of appearance. A diacritic
// marker with no letter to attach to counts as an invalid character.
type InvalidCharsError struct {
	Chars []rune
}

func (e *InvalidCharsError) Error() string {
	return fmt.Sprintf("invalid characters %q", e.Chars)
}

// InvalidDiacriticOrderError reports, for every cluster whose
// diacritics deviate from canonical order, the marker substring as it
// appeared, in order of appearance across the input. Two diacritics of
// the same order class in one cluster are reported here as well.
type InvalidDiacriticOrderError struct {
	Sequences []string
}

func (e *InvalidDiacriticOrderError) Error() string {
	return fmt.Sprintf("invalid diacritic order %q", e.Sequences)
}
