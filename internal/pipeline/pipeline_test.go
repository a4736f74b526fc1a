package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atticus-labs/betacode/internal/model"
)

func testConfig(outDir string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Batch.OutputDir = outDir
	return cfg
}

func TestConvertReader(t *testing.T) {
	p := NewPipeline(testConfig(""))

	in := "mh=nin a)/eide qea\\ *phlhi+a/dew *a)xilh=os\nmh=nin a)/eide qea\\ *phlhi+a/dew *a)xilh=os\n"
	var out strings.Builder

	lines, hits, err := p.ConvertReader(context.Background(), strings.NewReader(in), &out)
	if err != nil {
		t.Fatalf("ConvertReader: %v", err)
	}
	if lines != 2 {
		t.Errorf("lines = %d, want 2", lines)
	}
	// The repeated verse comes from the memoizer.
	if hits != 1 {
		t.Errorf("cache hits = %d, want 1", hits)
	}

	want := "μῆνιν ἄειδε θεὰ Πηληϊάδεω Ἀχιλῆος\nμῆνιν ἄειδε θεὰ Πηληϊάδεω Ἀχιλῆος\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestConvertReader_CacheDisabled(t *testing.T) {
	cfg := testConfig("")
	cfg.Batch.CacheEnabled = false
	p := NewPipeline(cfg)

	var out strings.Builder
	_, hits, err := p.ConvertReader(context.Background(), strings.NewReader("a)/\na)/\n"), &out)
	if err != nil {
		t.Fatalf("ConvertReader: %v", err)
	}
	if hits != 0 {
		t.Errorf("cache hits = %d, want 0 with cache disabled", hits)
	}
}

func TestConvertReader_Cancelled(t *testing.T) {
	p := NewPipeline(testConfig(""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	if _, _, err := p.ConvertReader(ctx, strings.NewReader("a\n"), &out); err == nil {
		t.Error("expected context error")
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "iliad.txt")
	if err := os.WriteFile(src, []byte("mh=nin a)/eide\n"), 0644); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "out")
	p := NewPipeline(testConfig(outDir))

	result, err := p.ConvertFile(context.Background(), src)
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if result.Lines != 1 {
		t.Errorf("lines = %d, want 1", result.Lines)
	}

	data, err := os.ReadFile(result.OutPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := string(data); got != "μῆνιν ἄειδε\n" {
		t.Errorf("output = %q, want %q", got, "μῆνιν ἄειδε\n")
	}
}

func TestConvertFile_HTML(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "page.html")
	if err := os.WriteFile(src, []byte("<p>mh=nin</p>"), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewPipeline(testConfig(filepath.Join(dir, "out")))
	result, err := p.ConvertFile(context.Background(), src)
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}

	data, err := os.ReadFile(result.OutPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "μῆνιν") || !strings.Contains(out, "<p>") {
		t.Errorf("html output = %q", out)
	}
}

func TestOutputPath_NoDir(t *testing.T) {
	p := NewPipeline(testConfig(""))
	if got := p.outputPath("corpus/iliad.txt"); got != filepath.Join("corpus", "iliad.gr.txt") {
		t.Errorf("outputPath = %q", got)
	}
}
