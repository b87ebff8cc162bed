// Package parser provides line reading and field parsing for temporal edge files.
package parser

// Line is a single data line read from the input, after the header.
type Line struct {
	// Raw is the original line content without the line terminator.
	Raw string

	// Index is the 1-based position of the line after the header.
	Index int
}

// InputRow holds the raw fields of one comma-separated edge row.
type InputRow struct {
	Vertex1   string
	Vertex2   string
	Timestamp string
}
