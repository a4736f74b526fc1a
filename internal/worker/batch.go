package worker

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atticus-labs/betacode/internal/pipeline"
)

// ConvertJob converts one corpus file
type ConvertJob struct {
	Path     string
	Pipeline *pipeline.Pipeline
}

// Execute runs the conversion
func (j *ConvertJob) Execute(ctx context.Context) Result {
	file, err := j.Pipeline.ConvertFile(ctx, j.Path)
	return &ConvertResult{
		Path:  j.Path,
		File:  file,
		Error: err,
	}
}

// ConvertResult represents the result of a conversion job
type ConvertResult struct {
	Path  string
	File  *pipeline.FileResult
	Error error
}

// GetError returns the error from the conversion result
func (r *ConvertResult) GetError() error {
	return r.Error
}

// BatchProcessor converts multiple corpus files concurrently
type BatchProcessor struct {
	pipeline    *pipeline.Pipeline
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(p *pipeline.Pipeline, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		pipeline:    p,
		concurrency: concurrency,
	}
}

// ProcessPaths converts the given files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ConvertResult {
	if len(paths) == 0 {
		return []*ConvertResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&ConvertJob{
			Path:     path,
			Pipeline: b.pipeline,
		})
	}

	results := pool.Wait()

	convertResults := make([]*ConvertResult, len(results))
	for i, result := range results {
		convertResults[i] = result.(*ConvertResult)
	}
	return convertResults
}

// ProcessList reads file paths from a list file and converts them
// concurrently
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string) ([]*ConvertResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ProcessDir converts every corpus file found under dir, filtered by
// extension
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string, exts []string) ([]*ConvertResult, error) {
	paths, err := ListDir(dir, exts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a list (one per line)
func ReadPathsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}

// ListDir walks dir and returns the corpus files matching exts, sorted
// for deterministic batches
func ListDir(dir string, exts []string) ([]string, error) {
	match := make(map[string]bool, len(exts))
	for _, ext := range exts {
		match[strings.ToLower(ext)] = true
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if len(match) == 0 || match[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
