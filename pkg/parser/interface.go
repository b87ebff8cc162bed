package parser

import (
	"context"
)

// LineSource provides an iterator over data lines.
// Implementations must be safe for sequential access (not concurrent).
type LineSource interface {
	// Next returns the next data line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)
}
