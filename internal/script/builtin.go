package script

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltins returns the scripts bundled with QuackChat.
func LoadBuiltins() ([]*Script, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin scripts: %w", err)
	}

	scripts := make([]*Script, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin script %s: %w", entry.Name(), err)
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin script %s: %w", entry.Name(), err)
		}
		s.Source = "builtin"
		scripts = append(scripts, s)
	}

	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].Name < scripts[j].Name
	})

	return scripts, nil
}

// Default returns the bundled savings lesson, the script played when the user
// names none.
func Default() (*Script, error) {
	scripts, err := LoadBuiltins()
	if err != nil {
		return nil, err
	}
	for _, s := range scripts {
		if s.Name == "savings-lesson" {
			return s, nil
		}
	}
	if len(scripts) > 0 {
		return scripts[0], nil
	}
	return nil, fmt.Errorf("no builtin scripts bundled")
}
