package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/psantana5/benchtab/internal/suite"
	"github.com/psantana5/benchtab/pkg/benchmark"
)

// measureOpts is the shared measurement configuration of the run and suite
// commands.
type measureOpts struct {
	commands  []suite.Command
	rehearse  bool
	runs      int
	summarize bool
	width     int
	format    string
	shellPath string
	out       io.Writer
}

func defaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	return "/bin/sh"
}

// shellJob wraps one command line as a measurable job. The child's CPU
// time is reaped by the parent and lands in the children columns.
func shellJob(shellPath, line string) benchmark.Job {
	return func() error {
		arg := "-c"
		if runtime.GOOS == "windows" {
			arg = "/C"
		}
		cmd := exec.Command(shellPath, arg, line)
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("command %q failed: %w", line, err)
		}
		return nil
	}
}

// jobFor repeats the command opts.runs times inside one measured job, so a
// row reports the summed cost of all invocations.
func (opts measureOpts) jobFor(line string) benchmark.Job {
	one := shellJob(opts.shellPath, line)
	if opts.runs <= 1 {
		return one
	}
	return func() error {
		for i := 0; i < opts.runs; i++ {
			if err := one(); err != nil {
				return err
			}
		}
		return nil
	}
}

// measure runs every command through the selected report driver and
// returns the measured records in submission order.
func measure(opts measureOpts) ([]benchmark.Times, error) {
	if opts.out == nil {
		opts.out = os.Stdout
	}

	if opts.rehearse {
		return benchmark.Rehearse(benchmark.Config{
			Out:        opts.out,
			LabelWidth: opts.width,
			Format:     opts.format,
		}, func(p *benchmark.Plan) error {
			for _, c := range opts.commands {
				p.Report(c.Label, opts.jobFor(c.Command))
			}
			return nil
		})
	}

	width := opts.width
	if width == 0 {
		// The labels are already known here, so fit the column to them.
		// The library's immediate driver itself never pre-scans.
		for _, c := range opts.commands {
			if len(c.Label) > width {
				width = len(c.Label)
			}
		}
	}

	wantSummary := opts.summarize && len(opts.commands) > 1
	var extras []string
	if wantSummary {
		extras = []string{">total:", ">avg:"}
	}

	return benchmark.Run(benchmark.Config{
		Out:         opts.out,
		Caption:     benchmark.DefaultCaption,
		LabelWidth:  width,
		Format:      opts.format,
		ExtraLabels: extras,
	}, func(s *benchmark.Session) (benchmark.Summary, error) {
		var sum benchmark.Times
		for _, c := range opts.commands {
			t, err := s.Report(c.Label, opts.jobFor(c.Command))
			if err != nil {
				return benchmark.None(), err
			}
			sum = sum.Add(t)
		}
		if wantSummary {
			return benchmark.Sequence(sum, sum.Div(float64(len(opts.commands)))), nil
		}
		return benchmark.Single(sum), nil
	})
}

// shellOverhead measures the bare cost of spawning the shell, averaged
// over a few empty invocations.
func shellOverhead(shellPath string, samples int) (benchmark.Times, error) {
	var acc benchmark.Times
	for i := 0; i < samples; i++ {
		if _, err := acc.AddIn(shellJob(shellPath, "")); err != nil {
			return benchmark.Times{}, err
		}
	}
	return acc.Div(float64(samples)), nil
}
