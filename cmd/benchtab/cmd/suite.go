package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/psantana5/benchtab/internal/suite"
)

// suiteCmd represents the suite command
var suiteCmd = &cobra.Command{
	Use:   "suite <file>",
	Short: "Run a YAML-defined benchmark suite",
	Long: `Load a suite file and measure its commands in one report. The file names
each command and may set width, format, runs, summary and rehearse for the
whole suite:

    name: string ops
    rehearse: true
    commands:
      - label: concat
        command: ./bench-concat.sh
      - label: builder
        command: ./bench-builder.sh`,
	Args: cobra.ExactArgs(1),
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(suiteCmd)
}

func runSuite(cmd *cobra.Command, args []string) error {
	s, err := suite.Load(args[0])
	if err != nil {
		return err
	}

	if s.Name != "" && outputFormat == "plain" {
		fmt.Fprintf(color.Output, "Suite: %s\n", color.CyanString(s.Name))
	}
	logger.Debug("suite loaded", map[string]interface{}{
		"file":     args[0],
		"commands": len(s.Commands),
		"rehearse": s.Rehearse,
	})

	runs := s.Runs
	if runs < 1 {
		runs = 1
	}
	width := s.Width
	if width == 0 {
		width = labelWidth
	}
	format := s.Format
	if format == "" {
		format = rowFormat
	}

	records, err := measure(measureOpts{
		commands:  s.Commands,
		rehearse:  s.Rehearse,
		runs:      runs,
		summarize: s.Summary,
		width:     width,
		format:    format,
		shellPath: defaultShell(),
		out:       reportWriter(),
	})
	if err != nil {
		logger.Error("suite failed", map[string]interface{}{"error": err.Error()})
		return err
	}

	return renderResults(records)
}
