package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	crochetparser "github.com/msto63/crochet/pattern/parser"
)

var exportFormat string

// roundRecord is one exported row of the per-round report
type roundRecord struct {
	Round       int    `yaml:"round" json:"round"`
	Instruction string `yaml:"instruction" json:"instruction"`
	Consumes    uint32 `yaml:"consumes" json:"consumes"`
	Produces    uint32 `yaml:"produces" json:"produces"`
}

var exportCmd = &cobra.Command{
	Use:   "export <pattern-file>",
	Short: "Export per-round counts as YAML or JSON",
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

		records := make([]roundRecord, len(rounds))
		for i, round := range rounds {
			records[i] = roundRecord{
				Round:       i + 1,
				Instruction: round.String(),
				Consumes:    round.InputCount(),
				Produces:    round.OutputCount(),
			}
		}

		switch exportFormat {
		case "yaml":
			out, err := yaml.Marshal(records)
			if err != nil {
				return fmt.Errorf("marshaling YAML: %w", err)
			}
			fmt.Print(string(out))
		case "json":
			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(out))
		default:
			return fmt.Errorf("unsupported export format: %s (want yaml or json)", exportFormat)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "yaml", "export format: yaml or json")
	rootCmd.AddCommand(exportCmd)
}
