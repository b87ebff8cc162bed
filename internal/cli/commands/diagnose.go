package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/edgeconv/pkg/converter"
	"github.com/ccollicutt/edgeconv/pkg/detector"
	"github.com/ccollicutt/edgeconv/pkg/parser"
)

// DefaultSampleLines is how many data lines diagnose checks by default.
const DefaultSampleLines = 1000

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Verbose bool
	Sample  int
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <input-file>",
		Short: "Check an edge file without converting it",
		Long: `Check an edge file for problems before converting it.

This command reads the input without writing any output:
- Input file existence and accessibility
- Header line (warns if it looks like a data row, which would be dropped)
- A sample of data rows run through the converter

Example:
  convert diagnose edges.csv
  convert diagnose --sample 0 edges.csv  # check every row`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runDiagnose(ctx, args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")
	cmd.Flags().IntVar(&opts.Sample, "sample", DefaultSampleLines, "Number of data rows to check (0 for all)")

	return cmd
}

func runDiagnose(ctx context.Context, inputPath string, opts *DiagnoseOptions, w io.Writer) error {
	results := []DiagnosticResult{}

	result := checkInputExists(inputPath)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(w, results, opts)
		return nil
	}

	result = checkHeader(inputPath)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(w, results, opts)
		return nil
	}

	results = append(results, checkRows(ctx, inputPath, opts.Sample))

	printDiagnostics(w, results, opts)
	return nil
}

func checkInputExists(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Input File",
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = fmt.Sprintf("Input file not found: %s", path)
		result.Suggests = []string{"Check the file path is correct"}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access input file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return result
	}
	if info.Size() == 0 {
		result.Status = "error"
		result.Message = "Input file is empty"
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return result
}

func checkHeader(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Header",
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot open input file: %v", err)
		return result
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), parser.MaxLineSize)
	if !scanner.Scan() {
		result.Status = "error"
		result.Message = "Cannot read header line"
		if err := scanner.Err(); err != nil {
			result.Details = []string{err.Error()}
		}
		return result
	}
	header := scanner.Text()

	// The header is dropped unread, so a header that converts cleanly is a lost edge.
	outcome := converter.New().Step(parser.Line{Raw: header, Index: 0})
	if outcome.Kind == converter.Accepted {
		result.Status = "warning"
		result.Message = "First line looks like a data row; it will be discarded as the header"
		result.Details = []string{truncate(header, 80)}
		result.Suggests = []string{"Add a header line such as: source,target,timestamp"}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Header: %s", truncate(header, 80))
	return result
}

func checkRows(ctx context.Context, path string, sample int) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Data Rows",
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot open input file: %v", err)
		return result
	}
	defer f.Close()

	conv := converter.New()
	source := parser.NewReaderSource(f, path)

	var checked, accepted int
	skipped := make(map[converter.SkipReason]int)

	for sample <= 0 || checked < sample {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Status = "error"
			result.Message = fmt.Sprintf("Read failed after %d rows: %v", checked, err)
			return result
		}
		checked++

		outcome := conv.Step(*line)
		switch outcome.Kind {
		case converter.Fatal:
			result.Status = "error"
			result.Message = fmt.Sprintf("Row %d would abort the conversion", line.Index)
			result.Details = []string{outcome.Err.Error()}
			result.Suggests = fatalSuggestions(outcome.Err)
			return result
		case converter.Skipped:
			skipped[outcome.Reason]++
		case converter.Accepted:
			accepted++
		}
	}

	if checked == 0 {
		result.Status = "warning"
		result.Message = "No data rows after the header"
		return result
	}

	totalSkipped := checked - accepted
	result.Message = fmt.Sprintf("Checked %d rows: %d accepted, %d skipped", checked, accepted, totalSkipped)
	result.Details = skipDetails(skipped)
	if accepted == 0 {
		result.Status = "warning"
		result.Suggests = []string{"No sampled row would produce output; check vertex columns and dates"}
		return result
	}

	result.Status = "ok"
	return result
}

func fatalSuggestions(err error) []string {
	var malformed *converter.MalformedRowError
	if errors.As(err, &malformed) {
		return []string{"Every row needs at least three comma-separated fields: vertex1,vertex2,timestamp"}
	}
	var badTS *converter.TimestampFormatError
	if errors.As(err, &badTS) {
		return []string{detector.New().Hint(badTS.Timestamp)}
	}
	return nil
}

func skipDetails(skipped map[converter.SkipReason]int) []string {
	reasons := make([]string, 0, len(skipped))
	for reason := range skipped {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)

	details := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		details = append(details, fmt.Sprintf("%s: %d", reason, skipped[converter.SkipReason(reason)]))
	}
	return details
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Fprintln(w, "=== Edge File Diagnostics ===")
	fmt.Fprintln(w)

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Fprintf(w, "[%s] %s\n", icon, r.Check)
		fmt.Fprintf(w, "    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Fprintf(w, "      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Fprintf(w, "      Hint: %s\n", s)
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Fprintln(w, "\nFix the errors above before converting.")
	} else if warnCount > 0 {
		fmt.Fprintln(w, "\nInput is usable but has warnings.")
	} else {
		fmt.Fprintln(w, "\nInput looks good!")
	}
}

// truncate shortens s to at most maxLen runes, never splitting a UTF-8 sequence.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
