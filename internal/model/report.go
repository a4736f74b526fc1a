package model

import (
	"errors"
	"time"

	"github.com/atticus-labs/betacode"
)

// Report is the itemized result of linting one Betacode source
type Report struct {
	Source    string    `json:"source" yaml:"source"`         // file path or "-" for inline text
	CheckedAt time.Time `json:"checked_at" yaml:"checked_at"` // when the lint ran
	Valid     bool      `json:"valid" yaml:"valid"`
	Findings  []Finding `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// Finding aggregates every occurrence of one defect category
type Finding struct {
	Category Category `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"` // offending characters or marker substrings, in scan order
	Count    int      `json:"count" yaml:"count"`
}

// Category classifies a validation defect
type Category string

const (
	CategoryNotASCII       Category = "not_ascii"       // characters outside the ASCII range
	CategoryDiacriticOrder Category = "diacritic_order" // markers out of canonical order
	CategoryInvalidChars   Category = "invalid_chars"   // characters the converter does not understand
)

// NewReport builds a lint report for source from the validator's
// findings
func NewReport(source string, input string) *Report {
	report := &Report{
		Source:    source,
		CheckedAt: time.Now().UTC(),
	}

	for _, err := range betacode.ValidateAll(input) {
		var notASCII *betacode.NotASCIIError
		var disorder *betacode.InvalidDiacriticOrderError
		var invalid *betacode.InvalidCharsError

		switch {
		case errors.As(err, &notASCII):
			report.Findings = append(report.Findings, Finding{
				Category: CategoryNotASCII,
				Items:    runeItems(notASCII.Chars),
				Count:    len(notASCII.Chars),
			})
		case errors.As(err, &disorder):
			report.Findings = append(report.Findings, Finding{
				Category: CategoryDiacriticOrder,
				Items:    disorder.Sequences,
				Count:    len(disorder.Sequences),
			})
		case errors.As(err, &invalid):
			report.Findings = append(report.Findings, Finding{
				Category: CategoryInvalidChars,
				Items:    runeItems(invalid.Chars),
				Count:    len(invalid.Chars),
			})
		}
	}

	report.Valid = len(report.Findings) == 0
	return report
}

func runeItems(chars []rune) []string {
	items := make([]string, len(chars))
	for i, r := range chars {
		items[i] = string(r)
	}
	return items
}
