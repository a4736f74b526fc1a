package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atticus-labs/betacode/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	lintFile   string
	lintFormat string
	lintOut    string
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint [text]",
	Short: "Check Betacode conformance and report every defect",
	Long: `Lint runs all conformance checks over the input and reports every
violation it finds, itemized per category:
- not_ascii: characters outside the ASCII range
- diacritic_order: diacritic markers out of canonical order
- invalid_chars: characters the converter does not understand

Unlike convert, lint never produces Greek output; it exists so a corpus
can be repaired before conversion is trusted to be lossless.

Example:
  betacode lint "h\\( a/)ndra"
  betacode lint --file iliad.txt --format yaml --out report.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFile, "file", "f", "", "read input from a file instead of the argument")
	lintCmd.Flags().StringVar(&lintFormat, "format", "json", "report format (json, yaml)")
	lintCmd.Flags().StringVar(&lintOut, "out", "", "write the report to a file instead of stdout")
}

func runLint(cmd *cobra.Command, args []string) error {
	source := "-"
	var input string

	if lintFile != "" {
		data, err := os.ReadFile(lintFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", lintFile, err)
		}
		source = lintFile
		input = string(data)
	} else {
		if len(args) == 0 {
			return fmt.Errorf("no input: pass text as an argument or use --file")
		}
		input = args[0]
	}

	report := model.NewReport(source, input)

	var data []byte
	var err error
	switch lintFormat {
	case "json":
		data, err = json.MarshalIndent(report, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(report)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", lintFormat)
	}
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if lintOut != "" {
		if err := os.WriteFile(lintOut, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", lintOut, err)
		}
	} else {
		fmt.Print(string(data))
	}

	if !report.Valid {
		total := 0
		for _, f := range report.Findings {
			total += f.Count
		}
		return fmt.Errorf("%d violations in %d categories", total, len(report.Findings))
	}
	return nil
}
