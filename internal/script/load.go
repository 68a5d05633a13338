package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a single script from disk.
func Load(path string) (*Script, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("script path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// LoadDir loads all scripts from a directory, sorted by name. A missing
// directory yields an empty list.
func LoadDir(dir string) ([]*Script, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Script{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Script{}, nil
		}
		return nil, fmt.Errorf("read scripts dir %s: %w", dir, err)
	}

	scripts := make([]*Script, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		s, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}

	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].Name < scripts[j].Name
	})

	return scripts, nil
}

// Parse unmarshals, normalizes, and validates script data.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return nil, fmt.Errorf("script name is required")
	}
	s.Description = strings.TrimSpace(s.Description)

	for sp, name := range s.Speakers {
		if !sp.Valid() {
			return nil, fmt.Errorf("unknown speaker %q in display names", sp)
		}
		s.Speakers[sp] = strings.TrimSpace(name)
	}

	for i := range s.Steps {
		normalizeStep(&s.Steps[i])
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func normalizeStep(step *Step) {
	step.Speaker = Speaker(strings.ToLower(strings.TrimSpace(string(step.Speaker))))
	step.Text = strings.TrimSpace(step.Text)
	for i := range step.Choices {
		step.Choices[i].ID = strings.TrimSpace(step.Choices[i].ID)
		step.Choices[i].Text = strings.TrimSpace(step.Choices[i].Text)
		step.Choices[i].Feedback = strings.TrimSpace(step.Choices[i].Feedback)
	}
}
