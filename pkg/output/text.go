package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "edgeconv: %d lines processed, %d written, %d skipped\n",
		report.Summary.LinesProcessed,
		report.Summary.LinesWritten,
		report.Summary.LinesSkipped)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "  Input:           %s\n", report.Metadata.Input)
	fmt.Fprintf(w, "  Output:          %s\n", report.Metadata.Output)
	fmt.Fprintf(w, "  Lines processed: %d\n", report.Summary.LinesProcessed)
	fmt.Fprintf(w, "  Lines written:   %d\n", report.Summary.LinesWritten)
	fmt.Fprintf(w, "  Lines skipped:   %d\n", report.Summary.LinesSkipped)
	if _, err := fmt.Fprintf(w, "  Duration:        %s\n", report.Metadata.Duration.Round(1e6)); err != nil {
		return err
	}
	if report.HasSkips() {
		_, err := fmt.Fprintf(w, "  Note: %d invalid lines were skipped (logged as \"invalid line\")\n", report.Summary.LinesSkipped)
		return err
	}
	return nil
}
