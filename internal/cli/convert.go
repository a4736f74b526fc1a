package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atticus-labs/betacode"
	"github.com/atticus-labs/betacode/internal/extract"
	"github.com/spf13/cobra"
)

var (
	fromFile   string
	htmlMode   bool
	force      bool
	revertMode bool
	outPath    string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [text]",
	Short: "Convert Betacode text to Greek Unicode",
	Long: `Convert transliterates Betacode into precomposed Greek Unicode.

Input is validated first: non-ASCII or unsupported characters abort the
conversion so silently degraded output never looks authoritative, while
out-of-order diacritics are tolerated because conversion normalizes
them anyway. Use --force to skip validation entirely.

With --revert the direction flips: Greek Unicode comes back out as
canonical Betacode.

Example:
  betacode convert "mh=nin a)/eide qea\\ *phlhi+a/dew *a)xilh=os"
  betacode convert --revert "μῆνιν ἄειδε"
  betacode convert --file iliad.txt --out iliad.gr.txt
  betacode convert --file page.html --html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&fromFile, "file", "f", "", "read input from a file instead of the argument")
	convertCmd.Flags().BoolVar(&htmlMode, "html", false, "parse input as HTML and convert text nodes only")
	convertCmd.Flags().BoolVar(&force, "force", false, "convert without validating first")
	convertCmd.Flags().BoolVar(&revertMode, "revert", false, "convert Greek Unicode back to Betacode")
	convertCmd.Flags().StringVar(&outPath, "out", "", "write output to a file instead of stdout")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	if revertMode {
		if htmlMode {
			return fmt.Errorf("--revert and --html are mutually exclusive")
		}
		return writeOutput(betacode.Revert(input))
	}

	if !force && !htmlMode {
		if err := checkConvertible(input); err != nil {
			return err
		}
	}

	var output string
	if htmlMode {
		output, err = extract.ConvertHTML(strings.NewReader(input))
		if err != nil {
			return fmt.Errorf("convert html: %w", err)
		}
	} else {
		output = betacode.Convert(input)
	}

	return writeOutput(output)
}

// checkConvertible rejects input the converter would have to degrade.
// Out-of-order diacritics pass: conversion reorders them, and fix
// exists for repairing the source.
func checkConvertible(input string) error {
	err := betacode.Validate(input)
	if err == nil {
		return nil
	}

	var disorder *betacode.InvalidDiacriticOrderError
	if errors.As(err, &disorder) {
		if verbose {
			fmt.Fprintf(os.Stderr, "Warning: %v (converting anyway)\n", err)
		}
		return nil
	}

	var notASCII *betacode.NotASCIIError
	if errors.As(err, &notASCII) {
		return fmt.Errorf("text is not ASCII: %w", err)
	}
	return fmt.Errorf("text is not valid Betacode: %w", err)
}

func readInput(args []string) (string, error) {
	if fromFile != "" {
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", fromFile, err)
		}
		return string(data), nil
	}
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("no input: pass text as an argument or use --file")
	}
	return args[0], nil
}

func writeOutput(output string) error {
	if outPath == "" {
		fmt.Println(output)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	}
	return nil
}
