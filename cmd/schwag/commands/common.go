// Package commands provides CLI command handlers for schwag.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.yaml.in/yaml/v4"

	"github.com/bguiz/schwag/registry"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// loadRegistry registers the given schema files, or every .yaml/.yml/.json
// file under dir when dir is non-empty, and freezes the result.
func loadRegistry(files []string, dir string, normalize bool) (*registry.Registry, error) {
	var opts []registry.Option
	if normalize {
		opts = append(opts, registry.WithNormalizedNames())
	}
	reg := registry.New(opts...)

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading schema dir: %w", err)
		}
		var names []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch filepath.Ext(entry.Name()) {
			case ".yaml", ".yml", ".json":
				names = append(names, filepath.Join(dir, entry.Name()))
			}
		}
		sort.Strings(names)
		files = append(files, names...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no schema documents given")
	}

	for _, file := range files {
		if err := reg.AddFile(file); err != nil {
			return nil, fmt.Errorf("registering %s: %w", file, err)
		}
	}

	reg.Freeze()
	return reg, nil
}
