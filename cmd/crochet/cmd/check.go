package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	crochetparser "github.com/msto63/crochet/pattern/parser"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check <pattern-file>",
	Short: "Parse a pattern file and report lint findings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readPatternFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, render(errorStyle, err.Error()))
			return err
		}

		result, err := engine.Check(source)
		if err != nil {
			var perr *crochetparser.ParseError
			if errors.As(err, &perr) {
				fmt.Fprint(os.Stderr, renderDiagnostic(source, perr))
			} else {
				fmt.Fprintln(os.Stderr, render(errorStyle, err.Error()))
			}
			return err
		}

		if len(result.Findings) == 0 {
			fmt.Printf("%s %d round(s), no findings\n", render(successStyle, "ok:"), len(result.Rounds))
			return nil
		}

		for _, finding := range result.Findings {
			fmt.Printf("%s %s\n", render(warningStyle, "Lint:"), finding)
		}
		if checkStrict || toolConfig.Strict {
			return fmt.Errorf("%d lint finding(s)", len(result.Findings))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit nonzero when findings are reported")
	rootCmd.AddCommand(checkCmd)
}
