package suite

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write suite file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeSuite(t, `
name: string ops
rehearse: true
width: 10
runs: 3
summary: true
commands:
  - label: concat
    command: ./bench-concat.sh
  - command: ./bench-builder.sh
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if s.Name != "string ops" {
		t.Errorf("Name = %q, expected %q", s.Name, "string ops")
	}
	if !s.Rehearse || !s.Summary {
		t.Errorf("Rehearse = %v, Summary = %v, expected both true", s.Rehearse, s.Summary)
	}
	if s.Width != 10 || s.Runs != 3 {
		t.Errorf("Width = %d, Runs = %d, expected 10 and 3", s.Width, s.Runs)
	}
	if len(s.Commands) != 2 {
		t.Fatalf("got %d commands, expected 2", len(s.Commands))
	}
	if s.Commands[0].Label != "concat" {
		t.Errorf("Commands[0].Label = %q, expected %q", s.Commands[0].Label, "concat")
	}
	// A missing label defaults to the command line
	if s.Commands[1].Label != "./bench-builder.sh" {
		t.Errorf("Commands[1].Label = %q, expected the command line", s.Commands[1].Label)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no commands", "name: empty\n"},
		{"empty command line", "commands:\n  - label: broken\n"},
		{"negative runs", "runs: -1\ncommands:\n  - command: ls\n"},
		{"negative width", "width: -5\ncommands:\n  - command: ls\n"},
		{"malformed yaml", "commands: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeSuite(t, tt.content)); err == nil {
				t.Error("Load() expected an error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() expected an error for a missing file, got nil")
	}
}
