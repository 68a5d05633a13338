package script

import (
	"os"
	"path/filepath"
)

// SearchPaths returns script directories in precedence order.
func SearchPaths(configuredDir string) []string {
	paths := make([]string, 0, 3)
	if configuredDir != "" {
		paths = append(paths, configuredDir)
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "quackchat", "scripts"))
	}

	return paths
}

// LoadAll returns user scripts from the search paths followed by builtins,
// with first-hit precedence by name.
func LoadAll(configuredDir string) ([]*Script, error) {
	seen := make(map[string]*Script)
	order := make([]string, 0)

	for _, dir := range SearchPaths(configuredDir) {
		scripts, err := LoadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, s := range scripts {
			if _, exists := seen[s.Name]; exists {
				continue
			}
			seen[s.Name] = s
			order = append(order, s.Name)
		}
	}

	builtins, err := LoadBuiltins()
	if err != nil {
		return nil, err
	}
	for _, s := range builtins {
		if _, exists := seen[s.Name]; exists {
			continue
		}
		seen[s.Name] = s
		order = append(order, s.Name)
	}

	resolved := make([]*Script, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}

	return resolved, nil
}
