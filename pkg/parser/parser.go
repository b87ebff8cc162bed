package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// MaxLineSize is the longest line the reader accepts.
const MaxLineSize = 1024 * 1024

// ReaderSource implements LineSource over an io.Reader.
// The first line of the input is a header and is discarded unread.
type ReaderSource struct {
	scanner       *bufio.Scanner
	name          string
	index         int
	headerSkipped bool
}

// NewReaderSource creates a LineSource reading from r. The name is used in error messages.
func NewReaderSource(r io.Reader, name string) *ReaderSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &ReaderSource{
		scanner: scanner,
		name:    name,
	}
}

// Next returns the next data line.
// Returns io.EOF when the input has been exhausted.
func (s *ReaderSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !s.headerSkipped {
		s.headerSkipped = true
		if !s.scanner.Scan() {
			return nil, s.eof()
		}
	}

	if !s.scanner.Scan() {
		return nil, s.eof()
	}

	s.index++
	return &Line{
		Raw:   s.scanner.Text(),
		Index: s.index,
	}, nil
}

func (s *ReaderSource) eof() error {
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", s.name, err)
	}
	return io.EOF
}
