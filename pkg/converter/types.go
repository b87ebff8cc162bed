// Package converter turns temporal edge rows into space-separated edges with Unix timestamps.
package converter

import (
	"strconv"
	"time"
)

// ParsedEdge is an edge whose timestamp has been converted to Unix seconds.
type ParsedEdge struct {
	Vertex1       string
	Vertex2       string
	UnixTimestamp int64
}

// Format renders the edge as an output line, including the trailing newline.
func (e ParsedEdge) Format() string {
	return e.Vertex1 + " " + e.Vertex2 + " " + strconv.FormatInt(e.UnixTimestamp, 10) + "\n"
}

// OutcomeKind classifies the result of converting one line.
type OutcomeKind int

const (
	// Accepted means the line produced an output edge.
	Accepted OutcomeKind = iota

	// Skipped means the line was dropped and the run continues.
	Skipped

	// Fatal means the run must stop.
	Fatal
)

// String returns the outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case Accepted:
		return "accepted"
	case Skipped:
		return "skipped"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// SkipReason explains why a line was dropped.
type SkipReason string

const (
	SkipEmptyVertex1      SkipReason = "empty vertex1"
	SkipEmptyVertex2      SkipReason = "empty vertex2"
	SkipNegativeTimestamp SkipReason = "negative timestamp"
)

// Outcome is the result of converting a single line.
type Outcome struct {
	Kind OutcomeKind

	// Edge is set when Kind is Accepted.
	Edge ParsedEdge

	// Reason is set when Kind is Skipped.
	Reason SkipReason

	// Err is set when Kind is Fatal.
	Err error
}

// Stats summarizes a conversion run.
type Stats struct {
	// LinesProcessed counts data lines examined, excluding the header.
	LinesProcessed int

	// LinesWritten counts edges written to the output.
	LinesWritten int

	// LinesSkipped counts lines dropped as invalid.
	LinesSkipped int

	// Duration is how long the run took.
	Duration time.Duration
}
