package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Entry pairs a submitted label with its measured record.
type Entry struct {
	Label string
	Times Times
}

// Session accumulates the entries of one report invocation. Jobs run
// synchronously, in submission order, and that order is the render order.
//
// A zero Session only collects; when Run wires it to an output it also
// prints each row the moment its job finishes.
type Session struct {
	out     io.Writer
	width   int
	format  string
	entries []Entry
}

// Report measures job, stores the result under label and returns it.
func (s *Session) Report(label string, job Job) (Times, error) {
	t, err := Measure(job)
	if err != nil {
		return Times{}, err
	}
	t.Label = label
	s.entries = append(s.entries, Entry{Label: label, Times: t})
	if s.out != nil {
		fmt.Fprint(s.out, Row(label, t, s.width, s.format))
	}
	return t, nil
}

// Entries returns the measured entries in submission order. The slice is
// shared; callers must not modify it.
func (s *Session) Entries() []Entry { return s.entries }

// Header renders the table caption line: labelWidth spaces of left margin,
// then the column titles. An empty caption produces no output at all.
func Header(caption string, labelWidth int) string {
	if caption == "" {
		return ""
	}
	return strings.Repeat(" ", labelWidth) + caption
}

// Row renders one report line: the label left-justified to labelWidth
// (longer labels overflow, they are never truncated), followed by the
// record expanded through rowFormat.
func Row(label string, t Times, labelWidth int, rowFormat string) string {
	return fmt.Sprintf("%-*s", labelWidth, label) + t.Format(rowFormat)
}

// Config controls one report invocation.
type Config struct {
	// Out receives all rendered lines; os.Stdout when nil.
	Out io.Writer
	// Caption titles the columns; empty suppresses the header. Rehearse
	// ignores it and always prints DefaultCaption.
	Caption string
	// LabelWidth is the label column width. Run takes it as-is (rows
	// misalign if a label is longer); Rehearse treats it as a floor and
	// always overrides it with the widest submitted label.
	LabelWidth int
	// Format is the row template, DefaultFormat when empty.
	Format string
	// ExtraLabels label the trailing rows produced by a Sequence summary.
	ExtraLabels []string
}

func (c Config) withDefaults() Config {
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	return c
}

// Summary is the tagged final value of a driving function: either a single
// record, an ordered sequence that expands into extra rows, or nothing.
type Summary struct {
	seq      []Times
	sequence bool
}

// Single wraps one record. It never produces extra rows.
func Single(t Times) Summary { return Summary{seq: []Times{t}} }

// Sequence wraps an ordered series of records; the immediate driver zips
// them with the configured extra labels into trailing rows.
func Sequence(ts ...Times) Summary { return Summary{seq: ts, sequence: true} }

// None reports no summary value at all.
func None() Summary { return Summary{} }

// Run drives an immediate, single-pass report: the header (if a caption is
// configured) and every row print as soon as they are known, all at the
// configured label width. There is no pre-scan of upcoming labels, so an
// undersized width silently misaligns. If fn's summary is a Sequence, its
// records render as extra rows after the main rows, each labeled with the
// matching ExtraLabels entry (or its own label when labels run out).
//
// Run returns the main-row records in submission order; extras are not
// included.
func Run(cfg Config, fn func(*Session) (Summary, error)) ([]Times, error) {
	cfg = cfg.withDefaults()
	fmt.Fprint(cfg.Out, Header(cfg.Caption, cfg.LabelWidth))

	s := &Session{out: cfg.Out, width: cfg.LabelWidth, format: cfg.Format}
	sum, err := fn(s)
	if err != nil {
		return nil, err
	}
	if sum.sequence {
		for i, t := range sum.seq {
			label := t.Label
			if i < len(cfg.ExtraLabels) {
				label = cfg.ExtraLabels[i]
			}
			fmt.Fprint(cfg.Out, Row(label, t, cfg.LabelWidth, cfg.Format))
		}
	}

	results := make([]Times, len(s.entries))
	for i, e := range s.entries {
		results[i] = e.Times
	}
	return results, nil
}

// Plan collects labeled jobs without running them. Rehearse drains it
// twice: once silently for layout, once for real.
type Plan struct {
	items []planItem
}

type planItem struct {
	label string
	job   Job
}

// Report schedules job under label. Nothing runs until the driver's
// rehearsal pass starts.
func (p *Plan) Report(label string, job Job) {
	p.items = append(p.items, planItem{label: label, job: job})
}

// Rehearse drives a two-pass report. The rehearsal pass runs every planned
// job once, printing progress rows at the provisional width known so far,
// purely to observe label widths; its numbers are thrown away. After a
// garbage-collection barrier the measurement pass re-runs everything and
// prints the aligned table at the final width. Any cfg.LabelWidth is only
// a floor: the computed maximum always wins, which is this driver's whole
// reason to exist over Run.
//
// A job error during either pass aborts the invocation immediately.
// Rehearse returns the measurement-pass records in submission order.
func Rehearse(cfg Config, fn func(*Plan) error) ([]Times, error) {
	cfg = cfg.withDefaults()
	p := &Plan{}
	if err := fn(p); err != nil {
		return nil, err
	}

	fmt.Fprint(cfg.Out, ljust("Rehearsal ", cfg.LabelWidth+len(DefaultCaption), '-')+"\n")
	width := cfg.LabelWidth
	var sum Times
	for _, it := range p.items {
		if n := len(it.label); n > width {
			width = n
		}
		t, err := Measure(it.job)
		if err != nil {
			return nil, err
		}
		fmt.Fprint(cfg.Out, Row(it.label, t, width, cfg.Format))
		sum = sum.Add(t)
	}
	footer := " " + sum.Format("total: %tsec") + "\n\n"
	fmt.Fprint(cfg.Out, rjust(footer, width+len(DefaultCaption)+2, '-'))

	// Reclaim rehearsal garbage so it is not attributed to the timed pass.
	runtime.GC()

	fmt.Fprint(cfg.Out, Header(DefaultCaption, width))
	results := make([]Times, 0, len(p.items))
	for _, it := range p.items {
		runtime.GC()
		t, err := Measure(it.job)
		if err != nil {
			return nil, err
		}
		t.Label = it.label
		fmt.Fprint(cfg.Out, Row(it.label, t, width, cfg.Format))
		results = append(results, t)
	}
	return results, nil
}

func ljust(s string, n int, pad byte) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(string(pad), n-len(s))
}

func rjust(s string, n int, pad byte) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(string(pad), n-len(s)) + s
}
