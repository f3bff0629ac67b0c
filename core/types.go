// Package core implements the orchestration for PDF Metadata Surgery:
// option handling, input validation, output path resolution and the
// two-phase processing driver. All PDF work happens behind the Engine
// interface so the driver can run against a fake in tests.
package core

import (
	"errors"
	"io"
)

// ErrWrongPassword reports that Decrypt matched none of the document's
// encryption keys. Other Decrypt failures (I/O, corruption) are
// returned as-is.
var ErrWrongPassword = errors.New("wrong password")

// Options is the validated flag set for one invocation.
type Options struct {
	Inputs   []string // one or more input PDF paths, in order
	Output   string   // explicit output path, single input only
	InPlace  bool     // rewrite each input in place
	Password string   // applied to every input that reports itself encrypted
	Force    bool     // allow overwriting an existing, non-identical output
	DryRun   bool     // report metadata instead of writing anything
	JSON     bool     // render dry-run reports as JSON
}

// Field is a single reported metadata key-value pair.
type Field struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Category string `json:"category"` // category label (e.g. "Info", "Embedded JPEG EXIF")
}

// Report holds everything dry-run mode discovered about one file.
type Report struct {
	Path    string  `json:"file"`
	Format  string  `json:"format"`
	Version string  `json:"version,omitempty"`
	Pages   int     `json:"pages,omitempty"`
	HasXMP  bool    `json:"xmp"`
	Fields  []Field `json:"fields"`
}

// Engine is the external PDF capability the driver runs against.
type Engine interface {
	// Open parses the document at path. Opening an encrypted document
	// succeeds; its contents become readable once Decrypt is called.
	Open(path string) (Document, error)
}

// Document is one parsed PDF, owned for the duration of a single
// processing step and discarded before the next file begins.
type Document interface {
	// Encrypted reports whether the document carries encryption.
	Encrypted() bool
	// Decrypt unlocks the document with the given password. It
	// returns ErrWrongPassword when the password matches no key.
	Decrypt(password string) error
	// StripInfo drops the document information dictionary.
	StripInfo()
	// StripXMP drops the XMP metadata stream from the document catalog.
	StripXMP() error
	// Report collects the metadata a strip run would remove.
	Report() (*Report, error)
	// Write serializes the document.
	Write(w io.Writer) error
}
