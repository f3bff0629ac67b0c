package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// absInputs expands and absolutizes every input path, preserving order.
func absInputs(inputs []string) ([]string, error) {
	paths := make([]string, len(inputs))
	for i, in := range inputs {
		p, err := absPath(in)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}
	return paths, nil
}

// absPath expands a leading ~ and makes the path absolute.
func absPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// validateInputs checks every input before any file is touched: each must
// exist and carry a .pdf extension. The first offender fails the whole run.
// Message texts are part of the CLI contract, hence the capitalization.
func validateInputs(paths []string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("File not found: %s", p)
		}
		if !strings.EqualFold(filepath.Ext(p), ".pdf") {
			return fmt.Errorf("Not a PDF file: %s", p)
		}
	}
	return nil
}
