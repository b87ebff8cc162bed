package converter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ccollicutt/edgeconv/pkg/parser"
)

// DefaultProgressEvery is how often, in data lines, progress is logged.
const DefaultProgressEvery = 1000000

// Converter reads edge rows and writes converted edges.
type Converter struct {
	timestamps *parser.TimestampParser
	logger     *slog.Logger

	// Options
	progressEvery int
	inputName     string
}

// Option configures converter behavior.
type Option func(*Converter)

// WithLogger sets the logger used for skipped lines and progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithProgressEvery sets the progress interval. Values below 1 are ignored.
func WithProgressEvery(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.progressEvery = n
		}
	}
}

// WithInputName sets the input name used in read errors.
func WithInputName(name string) Option {
	return func(c *Converter) {
		c.inputName = name
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		timestamps:    parser.NewTimestampParser(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		progressEvery: DefaultProgressEvery,
		inputName:     "input",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Step converts a single data line.
func (c *Converter) Step(line parser.Line) Outcome {
	row, err := parser.SplitRow(line.Raw)
	if err != nil {
		return Outcome{Kind: Fatal, Err: &MalformedRowError{Index: line.Index, Line: line.Raw, Err: err}}
	}

	ts, err := c.timestamps.Parse(row.Timestamp)
	if err != nil {
		return Outcome{Kind: Fatal, Err: &TimestampFormatError{Index: line.Index, Timestamp: row.Timestamp, Err: err}}
	}

	switch {
	case row.Vertex1 == "":
		return Outcome{Kind: Skipped, Reason: SkipEmptyVertex1}
	case row.Vertex2 == "":
		return Outcome{Kind: Skipped, Reason: SkipEmptyVertex2}
	case ts < 0:
		return Outcome{Kind: Skipped, Reason: SkipNegativeTimestamp}
	}

	return Outcome{
		Kind: Accepted,
		Edge: ParsedEdge{Vertex1: row.Vertex1, Vertex2: row.Vertex2, UnixTimestamp: ts},
	}
}

// Convert reads edge rows from r and writes converted edges to w.
// The first line of r is a header and is discarded.
// Output written before a fatal error is flushed to w.
func (c *Converter) Convert(ctx context.Context, r io.Reader, w io.Writer) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}

	out := bufio.NewWriter(w)
	err := c.run(ctx, parser.NewReaderSource(r, c.inputName), out, stats)
	stats.Duration = time.Since(start)

	if flushErr := out.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("flushing output: %w", flushErr)
	}
	if err != nil {
		return stats, err
	}

	c.logger.Debug("conversion finished",
		"processed", stats.LinesProcessed,
		"written", stats.LinesWritten,
		"skipped", stats.LinesSkipped,
		"duration", stats.Duration)

	return stats, nil
}

func (c *Converter) run(ctx context.Context, source parser.LineSource, out *bufio.Writer, stats *Stats) error {
	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		stats.LinesProcessed++

		outcome := c.Step(*line)
		switch outcome.Kind {
		case Fatal:
			return outcome.Err
		case Skipped:
			stats.LinesSkipped++
			c.logger.Warn("invalid line", "index", line.Index, "line", line.Raw, "reason", string(outcome.Reason))
		case Accepted:
			if _, err := out.WriteString(outcome.Edge.Format()); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			stats.LinesWritten++
		}

		if line.Index%c.progressEvery == 0 {
			c.logger.Info("processing line", "index", line.Index)
		}
	}
}
