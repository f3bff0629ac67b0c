// Command pdf-metadata-surgery strips the document information
// dictionary and XMP metadata from PDF files.
package main

import (
	"os"

	"github.com/carlmjohnson/exitcode"
	"github.com/spf13/cobra"

	"github.com/ankit-chaubey/pdf-metadata-surgery/core"
	"github.com/ankit-chaubey/pdf-metadata-surgery/core/pdf"
)

func main() {
	exitcode.Exit(run(os.Args[1:]))
}

func run(args []string) error {
	var opts core.Options
	printer := core.NewPrinter(false, os.Stdout, os.Stderr)

	cmd := &cobra.Command{
		Use:           "pdf-metadata-surgery [flags] input.pdf...",
		Short:         "Strip metadata (Info + XMP) from PDF files",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage is only helpful for argument mistakes; past
			// this point failures are about files.
			cmd.SilenceUsage = true
			opts.Inputs = args
			printer.JSON = opts.JSON
			runner := &core.Runner{
				Engine:  pdf.NewEngine(),
				Printer: printer,
			}
			return runner.Run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output PDF path (allowed only when a single input is provided)")
	cmd.Flags().BoolVar(&opts.InPlace, "in-place", false, "rewrite each input file in place")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password for encrypted PDFs")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite output file(s) if they already exist")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "report the metadata that would be removed, write nothing")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "render dry-run reports as JSON")

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		printer.Error(err)
		return err
	}
	return nil
}
