package betacode

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	valid := []string{
		"a)/",
		"mh=nin a)/eide qea\\ *phlhi+a/dew *a)xilh=os",
		"o(/s. kai/, h)/ *#3",
		"s3 *s3 s1a",
		"",
	}
	for _, in := range valid {
		if err := Validate(in); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", in, err)
		}
	}
}

func TestValidate_NotASCII(t *testing.T) {
	var notASCII *NotASCIIError

	err := Validate("ἄλγεα")
	if !errors.As(err, &notASCII) {
		t.Fatalf("Validate(%q) = %v, want *NotASCIIError", "ἄλγεα", err)
	}
	want := []rune{'ἄ', 'λ', 'γ', 'ε', 'α'}
	if !reflect.DeepEqual(notASCII.Chars, want) {
		t.Errorf("Chars = %q, want %q", notASCII.Chars, want)
	}

	err = Validate("çi)")
	if !errors.As(err, &notASCII) {
		t.Fatalf("Validate(%q) = %v, want *NotASCIIError", "çi)", err)
	}
	if !reflect.DeepEqual(notASCII.Chars, []rune{'ç'}) {
		t.Errorf("Chars = %q, want %q", notASCII.Chars, []rune{'ç'})
	}
}

func TestValidate_InvalidChars(t *testing.T) {
	tests := []struct {
		in   string
		want []rune
	}{
		{"9", []rune{'9'}},
		{"99", []rune{'9', '9'}}, // every occurrence, no dedup
		{"ja", []rune{'j'}},
		{") a", []rune{')'}}, // lone diacritic cannot start a cluster
		{"a\tb", []rune{'\t'}},
	}
	for _, tt := range tests {
		var invalid *InvalidCharsError
		err := Validate(tt.in)
		if !errors.As(err, &invalid) {
			t.Fatalf("Validate(%q) = %v, want *InvalidCharsError", tt.in, err)
		}
		if !reflect.DeepEqual(invalid.Chars, tt.want) {
			t.Errorf("Validate(%q) Chars = %q, want %q", tt.in, invalid.Chars, tt.want)
		}
	}
}

func TestValidate_InvalidDiacriticOrder(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"h\\( a/)ndra", []string{`\(`, `/)`}},
		{"a/)", []string{`/)`}},
		{"a|/)", []string{`|/)`}},
		{"a)(", []string{`)(`}}, // same-class pair is disorder too
		{"a//", []string{`//`}},
	}
	for _, tt := range tests {
		var disorder *InvalidDiacriticOrderError
		err := Validate(tt.in)
		if !errors.As(err, &disorder) {
			t.Fatalf("Validate(%q) = %v, want *InvalidDiacriticOrderError", tt.in, err)
		}
		if !reflect.DeepEqual(disorder.Sequences, tt.want) {
			t.Errorf("Validate(%q) Sequences = %q, want %q", tt.in, disorder.Sequences, tt.want)
		}
	}
}

func TestValidate_ConsonantDiacritics(t *testing.T) {
	// A diacritic on a consonant is a well-formed cluster, not an
	// invalid character; the table maps it to a combining sequence.
	for _, in := range []string{"q)", "r(", "n="} {
		if err := Validate(in); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", in, err)
		}
	}
	if got := Convert("q)"); got != "θ̓" {
		t.Errorf("Convert(%q) = %q, want %q", "q)", got, "θ̓")
	}
}

func TestValidate_Precedence(t *testing.T) {
	// Non-ASCII outranks everything.
	var notASCII *NotASCIIError
	if err := Validate("ἄ9 a/)"); !errors.As(err, &notASCII) {
		t.Errorf("Validate(%q) = %v, want *NotASCIIError", "ἄ9 a/)", err)
	}

	// Disorder outranks invalid characters.
	var disorder *InvalidDiacriticOrderError
	if err := Validate("9 a/)"); !errors.As(err, &disorder) {
		t.Errorf("Validate(%q) = %v, want *InvalidDiacriticOrderError", "9 a/)", err)
	}
}

func TestValidateAll(t *testing.T) {
	errs := ValidateAll("ἄ9 a/)")
	if len(errs) != 3 {
		t.Fatalf("ValidateAll returned %d errors, want 3", len(errs))
	}

	var notASCII *NotASCIIError
	var disorder *InvalidDiacriticOrderError
	var invalid *InvalidCharsError
	if !errors.As(errs[0], &notASCII) {
		t.Errorf("errs[0] = %v, want *NotASCIIError", errs[0])
	}
	if !errors.As(errs[1], &disorder) {
		t.Errorf("errs[1] = %v, want *InvalidDiacriticOrderError", errs[1])
	}
	if !errors.As(errs[2], &invalid) {
		t.Errorf("errs[2] = %v, want *InvalidCharsError", errs[2])
	}

	if errs := ValidateAll("a)/eide"); len(errs) != 0 {
		t.Errorf("ValidateAll(valid) = %v, want none", errs)
	}
}
