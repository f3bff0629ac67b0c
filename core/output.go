package core

import (
	"encoding/json"
	"fmt"
	"io"
)

// Printer handles all display output for the CLI.
type Printer struct {
	JSON bool
	Out  io.Writer
	Err  io.Writer
}

// NewPrinter creates a Printer writing to the given streams.
func NewPrinter(jsonMode bool, out, errw io.Writer) *Printer {
	return &Printer{JSON: jsonMode, Out: out, Err: errw}
}

// Processed prints the per-file success record, emitted as each file
// completes.
func (p *Printer) Processed(input, output string) {
	fmt.Fprintf(p.Out, "Processed: %s -> %s\n", input, output)
}

// Error prints the single line for the failure that terminates the run.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.Err, "ERROR: %v\n", err)
}

// PrintReport renders a dry-run metadata report.
func (p *Printer) PrintReport(r *Report) {
	if p.JSON {
		p.printJSON(r)
		return
	}
	p.printText(r)
}

func (p *Printer) printText(r *Report) {
	fmt.Fprintf(p.Out, "File  : %s\n", r.Path)
	fmt.Fprintf(p.Out, "Format: %s", r.Format)
	if r.Version != "" {
		fmt.Fprintf(p.Out, " %s", r.Version)
	}
	fmt.Fprintln(p.Out)
	if r.Pages > 0 {
		fmt.Fprintf(p.Out, "Pages : %d\n", r.Pages)
	}
	if r.HasXMP {
		fmt.Fprintln(p.Out, "XMP   : present")
	} else {
		fmt.Fprintln(p.Out, "XMP   : none")
	}
	if len(r.Fields) == 0 {
		fmt.Fprintln(p.Out, "(no removable metadata fields found)")
		return
	}
	fmt.Fprintln(p.Out)

	// Group by category, preserving first-seen order
	groups := make(map[string][]Field)
	order := []string{}
	seen := map[string]bool{}
	for _, f := range r.Fields {
		if !seen[f.Category] {
			seen[f.Category] = true
			order = append(order, f.Category)
		}
		groups[f.Category] = append(groups[f.Category], f)
	}

	for _, cat := range order {
		fmt.Fprintf(p.Out, "── %s ──\n", cat)
		for _, f := range groups[cat] {
			fmt.Fprintf(p.Out, "  %-30s %s\n", f.Key+":", f.Value)
		}
		fmt.Fprintln(p.Out)
	}
}

func (p *Printer) printJSON(r *Report) {
	b, _ := json.MarshalIndent(r, "", "  ")
	fmt.Fprintln(p.Out, string(b))
}
