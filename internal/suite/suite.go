// Package suite loads YAML benchmark-suite definitions: a named list of
// shell commands measured together in one report.
package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is one YAML-defined benchmark run.
type Suite struct {
	Name     string    `yaml:"name"`
	Rehearse bool      `yaml:"rehearse"`
	Width    int       `yaml:"width"`
	Format   string    `yaml:"format"`
	Runs     int       `yaml:"runs"`
	Summary  bool      `yaml:"summary"`
	Commands []Command `yaml:"commands"`
}

// Command is one labeled shell command inside a suite.
type Command struct {
	Label   string `yaml:"label"`
	Command string `yaml:"command"`
}

// Load reads and validates a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse suite file %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid suite file %s: %w", path, err)
	}
	return &s, nil
}

func (s *Suite) validate() error {
	if len(s.Commands) == 0 {
		return fmt.Errorf("suite has no commands")
	}
	for i := range s.Commands {
		c := &s.Commands[i]
		if c.Command == "" {
			return fmt.Errorf("command %d has an empty command line", i)
		}
		// A missing label falls back to the command line itself.
		if c.Label == "" {
			c.Label = c.Command
		}
	}
	if s.Runs < 0 {
		return fmt.Errorf("runs must not be negative, got %d", s.Runs)
	}
	if s.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", s.Width)
	}
	return nil
}
