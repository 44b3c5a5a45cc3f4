package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	crochetast "github.com/msto63/crochet/pattern/ast"
	crochetparser "github.com/msto63/crochet/pattern/parser"
)

// statsKindOrder fixes the display order of stitch kinds
var statsKindOrder = []crochetast.StitchKind{
	crochetast.StitchCh,
	crochetast.StitchTch,
	crochetast.StitchSc,
	crochetast.StitchFpsc,
	crochetast.StitchBpsc,
	crochetast.StitchBlsc,
	crochetast.StitchInc,
	crochetast.StitchFlinc,
	crochetast.StitchBlinc,
	crochetast.StitchDec,
}

var statsCmd = &cobra.Command{
	Use:   "stats <pattern-file>",
	Short: "Show stitch-kind tallies for a pattern file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readPatternFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, render(errorStyle, err.Error()))
			return err
		}

		rounds, err := engine.ParseRounds(source)
		if err != nil {
			var perr *crochetparser.ParseError
			if errors.As(err, &perr) {
				fmt.Fprint(os.Stderr, renderDiagnostic(source, perr))
			} else {
				fmt.Fprintln(os.Stderr, render(errorStyle, err.Error()))
			}
			return err
		}

		tally := crochetast.NewKindTally()
		var total uint32
		for _, round := range rounds {
			round.Accept(tally)
			total += round.OutputCount()
		}

		fmt.Printf("%s %d\n", render(mutedStyle, "rounds:"), len(rounds))
		fmt.Printf("%s %d\n", render(mutedStyle, "stitches produced:"), total)
		for _, kind := range statsKindOrder {
			if count := tally.Count(kind); count > 0 {
				fmt.Printf("  %-5s %d\n", kind, count)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
