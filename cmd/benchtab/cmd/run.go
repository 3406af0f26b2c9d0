package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/psantana5/benchtab/internal/output"
	"github.com/psantana5/benchtab/internal/suite"
	"github.com/psantana5/benchtab/internal/sysinfo"
	"github.com/psantana5/benchtab/pkg/benchmark"
)

var (
	rehearse   bool
	runs       int
	summarize  bool
	exportPath string
	shellPath  string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command> [<command>...]",
	Short: "Measure one or more shell commands",
	Long: `Measure each command's CPU and wall-clock cost and print one report row
per command. The child's CPU time shows up in the children components of the
record (the %U/%Y directives) and in the total column.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&rehearse, "rehearse", false, "run a throwaway rehearsal pass first so columns always align")
	runCmd.Flags().IntVar(&runs, "runs", 1, "invocations per command, summed into one row")
	runCmd.Flags().BoolVar(&summarize, "summary", false, "append >total: and >avg: rows after the report")
	runCmd.Flags().StringVar(&exportPath, "export", "", "write the results to a JSON file")
	runCmd.Flags().StringVar(&shellPath, "shell", defaultShell(), "shell used to run the commands")
}

func runRun(cmd *cobra.Command, args []string) error {
	if runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", runs)
	}

	commands := make([]suite.Command, len(args))
	for i, line := range args {
		commands[i] = suite.Command{Label: line, Command: line}
	}

	printRunBanner()

	records, err := measure(measureOpts{
		commands:  commands,
		rehearse:  rehearse,
		runs:      runs,
		summarize: summarize,
		width:     labelWidth,
		format:    rowFormat,
		shellPath: shellPath,
		out:       reportWriter(),
	})
	if err != nil {
		logger.Error("benchmark failed", map[string]interface{}{"error": err.Error()})
		return err
	}

	return renderResults(records)
}

// reportWriter returns the sink for the plain report; table and json modes
// measure silently and render afterwards.
func reportWriter() io.Writer {
	if outputFormat == "plain" {
		return os.Stdout
	}
	return io.Discard
}

func printRunBanner() {
	if !verbose {
		return
	}
	if info, err := sysinfo.Collect(); err == nil {
		fmt.Fprintln(color.Output, color.HiBlackString(info.Summary()))
	}
	if overhead, err := shellOverhead(shellPath, 3); err == nil {
		logger.Debug("shell spawn overhead", map[string]interface{}{
			"shell": shellPath,
			"real":  fmt.Sprintf("%.6fs", overhead.Real),
			"total": fmt.Sprintf("%.6fs", overhead.Total()),
		})
	}
}

func renderResults(records []benchmark.Times) error {
	results := output.FromTimes(records)

	switch outputFormat {
	case "plain":
		// Already printed by the report driver.
	case "table":
		output.WriteTable(os.Stdout, results)
	case "json":
		if err := output.WriteJSON(os.Stdout, results); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	if exportPath != "" {
		if err := output.ExportFile(exportPath, results); err != nil {
			return err
		}
		logger.Info("results exported", map[string]interface{}{"path": exportPath})
	}
	return nil
}
