package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atticus-labs/betacode"
	"github.com/atticus-labs/betacode/internal/cache"
	"github.com/atticus-labs/betacode/internal/extract"
	"github.com/atticus-labs/betacode/internal/model"
)

// Pipeline orchestrates file conversion: read, convert line by line,
// write. Repeated lines are memoized because corpus texts reuse
// formulaic verses heavily.
type Pipeline struct {
	cache  cache.Cache
	config *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Batch.CacheEnabled {
		c = cache.NewMemoryCache(cfg.Batch.CacheTTL, cfg.Batch.CacheTTL)
	}
	return &Pipeline{
		cache:  c,
		config: cfg,
	}
}

// FileResult describes one converted file
type FileResult struct {
	Path      string // input path
	OutPath   string // where the converted text was written
	Lines     int    // lines converted
	CacheHits int    // lines served from the memoizer
}

// ConvertFile converts one corpus file and writes the result next to
// it, or into the configured output directory when one is set. HTML
// files keep their markup.
func (p *Pipeline) ConvertFile(ctx context.Context, path string) (*FileResult, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = in.Close() }()

	outPath := p.outputPath(path)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", outPath, err)
	}
	defer func() { _ = out.Close() }()

	result := &FileResult{Path: path, OutPath: outPath}

	if p.isHTML(path) {
		converted, err := extract.ConvertHTML(in)
		if err != nil {
			return nil, fmt.Errorf("convert html %s: %w", path, err)
		}
		if _, err := io.WriteString(out, converted); err != nil {
			return nil, fmt.Errorf("write %s: %w", outPath, err)
		}
		result.Lines = 1
		return result, nil
	}

	lines, hits, err := p.ConvertReader(ctx, in, out)
	if err != nil {
		return nil, err
	}
	result.Lines = lines
	result.CacheHits = hits
	return result, nil
}

// ConvertReader converts Betacode from r to w line by line. It returns
// the number of lines written and how many came from the memoizer.
func (p *Pipeline) ConvertReader(ctx context.Context, r io.Reader, w io.Writer) (int, int, error) {
	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)

	lines, hits := 0, 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return lines, hits, err
		}
		converted, hit := p.convertLine(scanner.Text())
		if hit {
			hits++
		}
		if _, err := bw.WriteString(converted); err != nil {
			return lines, hits, fmt.Errorf("write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return lines, hits, fmt.Errorf("write: %w", err)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return lines, hits, fmt.Errorf("read: %w", err)
	}
	return lines, hits, bw.Flush()
}

// convertLine converts a single line, consulting the memoizer first
func (p *Pipeline) convertLine(line string) (string, bool) {
	if p.cache == nil {
		return betacode.Convert(line), false
	}

	key := cache.Key(line)
	if cached, found := p.cache.Get(key); found {
		return cached, true
	}
	converted := betacode.Convert(line)
	_ = p.cache.Set(key, converted, p.config.Batch.CacheTTL)
	return converted, false
}

func (p *Pipeline) isHTML(path string) bool {
	if p.config.Convert.HTML {
		return true
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// outputPath places converted files in the output directory, or next
// to the input with a .gr suffix when no directory is configured.
func (p *Pipeline) outputPath(path string) string {
	if dir := p.config.Batch.OutputDir; dir != "" {
		return filepath.Join(dir, filepath.Base(path))
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".gr" + ext
}
