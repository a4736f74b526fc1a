package betacode

import "testing"

func TestRevert_GroundTruth(t *testing.T) {
	in := nfc("μῆνιν ἄειδε θεὰ Πηληϊάδεω Ἀχιλῆος")
	want := "mh=nin a)/eide qea\\ *phlhi+a/dew *a)xilh=os"
	if got := Revert(in); got != want {
		t.Errorf("Revert(%q) = %q, want %q", in, got, want)
	}
}

func TestRevert_SingleGraphemes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ἄ", "a)/"},
		{"ᾄ", "a)/|"},
		{"ῥ", "r("},
		{"ϊ", "i+"},
		{"ᾱ", "a_"},
		{"Α", "*a"},
		{"Ἀ", "*a)"},
		{"Ϙ", "*#3"},
		{"ϲ", "s3"},
		{"Ϲ", "*s3"},
		{"Σ", "*s"}, // plain code, never a sigma variant
		{"ς", "s"},  // final sigma is positional, not a code
		{"·", ":"},
		{"³", ";"},
	}
	for _, tt := range tests {
		if got := Revert(nfc(tt.in)); got != tt.want {
			t.Errorf("Revert(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRevert_Unprecomposed(t *testing.T) {
	// ᾱ with an acute never precomposes; the grapheme spans two runes.
	if got := Revert(nfc("ᾱ́")); got != "a_/" {
		t.Errorf("Revert long-alpha acute = %q, want %q", got, "a_/")
	}
}

func TestRevert_Passthrough(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9", "9"},
		{"abc", "abc"}, // already ASCII
		{"λόγος 42, ναί.", "lo/gos 42, nai/."},
	}
	for _, tt := range tests {
		if got := Revert(nfc(tt.in)); got != tt.want {
			t.Errorf("Revert(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRevert_RoundTrip(t *testing.T) {
	// Canonical Betacode survives a Convert/Revert round trip.
	inputs := []string{
		"mh=nin a)/eide qea\\ *phlhi+a/dew *a)xilh=os",
		"o(/s",
		"*#1 *#2 *#3 *#5",
		"qea: nai/.",
	}
	for _, in := range inputs {
		if got := Revert(Convert(in)); got != in {
			t.Errorf("Revert(Convert(%q)) = %q", in, got)
		}
	}
}
