package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/atticus-labs/betacode/internal/model"
	"github.com/atticus-labs/betacode/internal/pipeline"
	"github.com/atticus-labs/betacode/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	extensions   []string
	noCache      bool
	fromList     bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|list>",
	Short: "Convert a corpus of Betacode files in parallel",
	Long: `Batch converts many files concurrently:
- Walk a directory for corpus files (or read paths from a list with --list)
- Convert files in parallel with a configurable worker count
- Memoize repeated lines, since corpus texts reuse formulaic verses
- Write converted files into the output directory

Example:
  betacode batch ./corpus
  betacode batch ./corpus --concurrency 8 --output-dir ./greek
  betacode batch files.txt --list --ext .txt --ext .html`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./converted", "output directory for converted files")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringSliceVar(&extensions, "ext", []string{".txt", ".bc", ".html"}, "file extensions picked up from directories")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable line memoization")
	batchCmd.Flags().BoolVar(&fromList, "list", false, "treat the argument as a file listing paths, one per line")
}

func runBatch(cmd *cobra.Command, args []string) error {
	target := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Batch.Concurrency = concurrency
	cfg.Batch.OutputDir = outputDir
	cfg.Batch.Extensions = extensions
	cfg.Batch.CacheEnabled = !noCache
	cfg.Output.Verbose = verbose

	if verbose {
		fmt.Fprintf(os.Stderr, "Converting: %s\n", target)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", concurrency)
		fmt.Fprintf(os.Stderr, "Output: %s\n", outputDir)
		fmt.Fprintln(os.Stderr)
	}

	b := worker.NewBatchProcessor(pipeline.NewPipeline(cfg), concurrency)

	var results []*worker.ConvertResult
	var err error
	if fromList {
		results, err = b.ProcessList(ctx, target)
	} else {
		results, err = b.ProcessDir(ctx, target, extensions)
	}
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no corpus files found in %s", target)
	}

	converted, failed := 0, 0
	lines, hits := 0, 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Error)
			continue
		}
		converted++
		lines += res.File.Lines
		hits += res.File.CacheHits
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s → %s (%d lines)\n", res.Path, res.File.OutPath, res.File.Lines)
		}
	}

	fmt.Fprintf(os.Stderr, "Converted %d files (%d lines, %d memoized), %d failed\n",
		converted, lines, hits, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
