package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Runner drives one invocation against an Engine.
type Runner struct {
	Engine  Engine
	Printer *Printer
}

// Run executes the two phases of an invocation. Phase 1 validates every
// input before any file is touched. Phase 2 processes the inputs in
// order and aborts on the first failure; files already processed in the
// same run stay on disk.
func (r *Runner) Run(opts Options) error {
	paths, err := absInputs(opts.Inputs)
	if err != nil {
		return err
	}
	if err := validateInputs(paths); err != nil {
		return err
	}

	multiple := len(paths) > 1
	for _, path := range paths {
		outPath, err := resolveOutputPath(path, opts.Output, opts.InPlace, opts.Force, multiple)
		if err != nil {
			return err
		}
		if opts.DryRun {
			if err := r.report(path, opts.Password); err != nil {
				return err
			}
			continue
		}
		if err := r.strip(path, outPath, opts.Password); err != nil {
			return err
		}
		r.Printer.Processed(path, outPath)
	}
	return nil
}

// open parses one document and, when it reports itself encrypted,
// requires and applies the password.
func (r *Runner) open(path, password string) (Document, error) {
	doc, err := r.Engine.Open(path)
	if err != nil {
		return nil, err
	}
	if doc.Encrypted() {
		if password == "" {
			return nil, fmt.Errorf("Encrypted PDF requires --password: %s", path)
		}
		if err := doc.Decrypt(password); err != nil {
			if errors.Is(err, ErrWrongPassword) {
				return nil, fmt.Errorf("Failed to decrypt PDF with provided password: %s", path)
			}
			return nil, err
		}
	}
	return doc, nil
}

func (r *Runner) report(path, password string) error {
	doc, err := r.open(path, password)
	if err != nil {
		return err
	}
	rep, err := doc.Report()
	if err != nil {
		return err
	}
	r.Printer.PrintReport(rep)
	return nil
}

// strip removes the Info dictionary and the XMP stream and writes the
// result. In-place rewrites go through a sibling temp file that is
// swapped in only after a complete successful write, so a failure never
// truncates the original.
func (r *Runner) strip(inputPath, outputPath, password string) error {
	doc, err := r.open(inputPath, password)
	if err != nil {
		return err
	}
	doc.StripInfo()
	if err := doc.StripXMP(); err != nil {
		return err
	}

	if outputPath == inputPath {
		tmpPath := filepath.Join(filepath.Dir(inputPath), stem(inputPath)+".tmp.pdf")
		if err := writeDocument(doc, tmpPath); err != nil {
			return err
		}
		return os.Rename(tmpPath, inputPath)
	}
	return writeDocument(doc, outputPath)
}

// writeDocument serializes doc to path, removing the partial file when
// the write or close fails.
func writeDocument(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := doc.Write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
