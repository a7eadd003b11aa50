package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Source describes where markup input comes from.
type Source struct {
	// Name is used in error messages to give more context about the input.
	Name string
	// Value is inline markup provided via arguments or configuration.
	Value string
	// File points to a file containing the markup. When set it takes
	// precedence over Value.
	File string
	// Reader is consulted when neither File nor Value is set, usually stdin.
	Reader io.Reader
}

// Load returns the markup from the provided source. File beats Value, Value
// beats Reader. Content is returned as is; an error is returned when it is
// blank.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "input"
	}

	var content string

	file := strings.TrimSpace(src.File)
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		content = string(data)
	case src.Value != "":
		content = src.Value
	case src.Reader != nil:
		data, err := io.ReadAll(src.Reader)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", name, err)
		}
		content = string(data)
	default:
		return "", fmt.Errorf("%s is not provided", name)
	}

	if strings.TrimSpace(content) == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return "", fmt.Errorf("%s is empty", name)
	}

	return content, nil
}
