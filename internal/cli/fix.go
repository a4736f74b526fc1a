package cli

import (
	"fmt"
	"os"

	"github.com/atticus-labs/betacode"
	"github.com/spf13/cobra"
)

var (
	fixFile  string
	fixWrite bool
)

// fixCmd represents the fix command
var fixCmd = &cobra.Command{
	Use:   "fix [text]",
	Short: "Reorder diacritic markers into canonical order",
	Long: `Fix rewrites every letter cluster so its diacritics follow the
canonical order (length mark, then breathing or diairesis, then accent,
then subscript iota). It is the recovery step for text that lint flags only for
diacritic order: the output converts identically and also validates.

Nothing else is corrected; unsupported characters stay as they are.

Example:
  betacode fix "h\\( a/)ndra"
  betacode fix --file iliad.txt --write`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().StringVarP(&fixFile, "file", "f", "", "read input from a file instead of the argument")
	fixCmd.Flags().BoolVarP(&fixWrite, "write", "w", false, "rewrite the input file in place")
}

func runFix(cmd *cobra.Command, args []string) error {
	if fixFile != "" {
		data, err := os.ReadFile(fixFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", fixFile, err)
		}
		fixed := betacode.Reorder(string(data))
		if fixWrite {
			if err := os.WriteFile(fixFile, []byte(fixed), 0644); err != nil {
				return fmt.Errorf("write %s: %w", fixFile, err)
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "Fixed %s\n", fixFile)
			}
			return nil
		}
		fmt.Print(fixed)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no input: pass text as an argument or use --file")
	}
	fmt.Println(betacode.Reorder(args[0]))
	return nil
}
