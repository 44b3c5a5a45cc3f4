package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	crochetconfig "github.com/msto63/crochet/core/config"
	crochetlog "github.com/msto63/crochet/core/log"
	"github.com/msto63/crochet/pattern"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	toolConfig *crochetconfig.File
	logger     *crochetlog.Logger
	engine     *pattern.Engine
)

var rootCmd = &cobra.Command{
	Use:   "crochet",
	Short: "Compiler and lint tool for crochet pattern notation",
	Long: `crochet compiles compact crochet pattern notation (e.g. "sc 6 in mr",
"[inc, sc] 6") into an instruction tree, checks that the stitch counts
produced by one round match the stitches consumed by the next, and
renders the rounds as a canonical, publishable report.

Commands:
  check    parse a pattern file and report lint findings
  format   render a pattern file as a numbered report
  export   export per-round counts as YAML or JSON
  stats    show stitch-kind tallies for a pattern file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./crochet.toml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable terminal styling")
}

// setup loads the configuration and wires the logger and engine used by
// all subcommands
func setup() error {
	switch {
	case cfgFile != "":
		cfg, err := crochetconfig.Load(cfgFile)
		if err != nil {
			return err
		}
		toolConfig = cfg
	default:
		if _, err := os.Stat("crochet.toml"); err == nil {
			cfg, err := crochetconfig.Load("crochet.toml")
			if err != nil {
				return err
			}
			toolConfig = cfg
		} else {
			toolConfig = crochetconfig.Default()
		}
	}

	level, err := crochetlog.ParseLevel(toolConfig.Log.Level)
	if err != nil {
		level = crochetlog.DefaultLevel()
	}
	if verbose {
		level = crochetlog.LevelDebug
	}

	logger = crochetlog.New().
		WithLevel(level).
		WithName("crochet").
		WithRequestID(uuid.NewString())
	crochetlog.SetDefault(logger)

	engine = pattern.NewEngine(pattern.Options{Logger: logger})
	return nil
}

// colorEnabled reports whether terminal styling should be applied
func colorEnabled() bool {
	if noColor {
		return false
	}
	return toolConfig.Color != "never"
}

// readPatternFile loads a pattern source file for the subcommands
func readPatternFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pattern file %s: %w", path, err)
	}
	return string(data), nil
}
