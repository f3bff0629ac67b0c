package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// stem returns the file name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// resolveOutputPath computes the concrete output path for one input.
// An explicit output path is valid only for a single input and excludes
// in-place mode. Without either flag the output is <stem>-stripped.pdf
// next to the input. An already existing output that is not the input
// itself requires force; the in-place identity never trips that check.
func resolveOutputPath(inputPath, outputArg string, inPlace, force, multipleInputs bool) (string, error) {
	var outputPath string
	switch {
	case outputArg != "":
		if multipleInputs {
			return "", fmt.Errorf("--output can be used only with a single input.")
		}
		if inPlace {
			return "", fmt.Errorf("Use either --output or --in-place, not both.")
		}
		p, err := absPath(outputArg)
		if err != nil {
			return "", err
		}
		outputPath = p
	case inPlace:
		outputPath = inputPath
	default:
		outputPath = filepath.Join(filepath.Dir(inputPath), stem(inputPath)+"-stripped.pdf")
	}

	if outputPath != inputPath && !force {
		if _, err := os.Stat(outputPath); err == nil {
			return "", fmt.Errorf("Output already exists: %s (use --force to overwrite).", outputPath)
		}
	}
	return outputPath, nil
}
