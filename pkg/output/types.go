// Package output provides formatting for conversion run reports.
package output

import (
	"time"

	"github.com/ccollicutt/edgeconv/pkg/converter"
)

// Report is the complete conversion output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// LinesProcessed is the number of data lines examined, excluding the header.
	LinesProcessed int `json:"lines_processed"`

	// LinesWritten is the number of edges written.
	LinesWritten int `json:"lines_written"`

	// LinesSkipped is the number of invalid lines dropped.
	LinesSkipped int `json:"lines_skipped"`
}

// Metadata provides context about the conversion run.
type Metadata struct {
	// Input is the path of the edge file that was read.
	Input string `json:"input"`

	// Output is the path of the file that was written.
	Output string `json:"output"`

	// ConvertedAt is when the conversion finished.
	ConvertedAt time.Time `json:"converted_at"`

	// Duration is how long the conversion took, encoded in nanoseconds.
	Duration time.Duration `json:"duration_ns"`
}

// NewReport creates a Report from conversion stats.
func NewReport(stats *converter.Stats, input, output string, finishedAt time.Time) *Report {
	return &Report{
		Summary: Summary{
			LinesProcessed: stats.LinesProcessed,
			LinesWritten:   stats.LinesWritten,
			LinesSkipped:   stats.LinesSkipped,
		},
		Metadata: Metadata{
			Input:       input,
			Output:      output,
			ConvertedAt: finishedAt,
			Duration:    stats.Duration,
		},
	}
}

// HasSkips returns true if any line was dropped.
func (r *Report) HasSkips() bool {
	return r.Summary.LinesSkipped > 0
}
