package converter

import "fmt"

// MalformedRowError reports a data row with fewer than three fields.
type MalformedRowError struct {
	// Index is the 1-based position of the row after the header.
	Index int
	Line  string
	Err   error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at line %d (%q): %v", e.Index, e.Line, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// TimestampFormatError reports a timestamp that does not parse.
type TimestampFormatError struct {
	// Index is the 1-based position of the row after the header.
	Index     int
	Timestamp string
	Err       error
}

func (e *TimestampFormatError) Error() string {
	return fmt.Sprintf("invalid timestamp at line %d: %v", e.Index, e.Err)
}

func (e *TimestampFormatError) Unwrap() error {
	return e.Err
}
