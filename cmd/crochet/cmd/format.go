package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	crochetparser "github.com/msto63/crochet/pattern/parser"
)

var formatForce bool

var formatCmd = &cobra.Command{
	Use:   "format <pattern-file>",
	Short: "Render a pattern file as a numbered report",
	Long: `Renders the parsed rounds as the canonical numbered report, one line
per round with its produced stitch count. When the pattern has lint
findings, the findings are shown instead; pass --force to render the
report anyway.`,
	Args: cobra.ExactArgs(1),
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

		if len(result.Findings) > 0 && !formatForce {
			for _, finding := range result.Findings {
				fmt.Printf("%s %s\n", render(warningStyle, "Lint:"), finding)
			}
			return fmt.Errorf("%d lint finding(s)", len(result.Findings))
		}

		fmt.Println(result.Report)
		return nil
	},
}

func init() {
	formatCmd.Flags().BoolVar(&formatForce, "force", false, "render the report even when findings exist")
	rootCmd.AddCommand(formatCmd)
}
