package extract

import (
	"strings"
	"testing"
)

func TestConvertHTML_TextNodes(t *testing.T) {
	in := `<html><head><title>mh=nin</title></head><body><p class="verse">mh=nin a)/eide</p></body></html>`

	out, err := ConvertHTML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ConvertHTML: %v", err)
	}

	if !strings.Contains(out, "μῆνιν ἄειδε") {
		t.Errorf("output missing converted text: %q", out)
	}
	if !strings.Contains(out, `<p class="verse">`) {
		t.Errorf("output lost markup: %q", out)
	}
	if !strings.Contains(out, "<title>μῆνιν</title>") {
		t.Errorf("title not converted: %q", out)
	}
}

func TestConvertHTML_SkipsScripts(t *testing.T) {
	in := `<html><body><script>var a = "qea";</script><p>qea\</p></body></html>`

	out, err := ConvertHTML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ConvertHTML: %v", err)
	}

	if !strings.Contains(out, `var a = "qea";`) {
		t.Errorf("script body was rewritten: %q", out)
	}
	if !strings.Contains(out, "θεὰ") {
		t.Errorf("paragraph not converted: %q", out)
	}
}

func TestConvertHTML_Malformed(t *testing.T) {
	// html.Parse repairs rather than fails; a bare fragment still
	// converts.
	out, err := ConvertHTML(strings.NewReader("a)/eide"))
	if err != nil {
		t.Fatalf("ConvertHTML: %v", err)
	}
	if !strings.Contains(out, "ἄειδε") {
		t.Errorf("fragment not converted: %q", out)
	}
}
