package parser

import (
	"fmt"
	"strings"
)

// MinFields is the number of comma-separated fields a data row must have.
const MinFields = 3

// SplitRow splits a comma-separated line into an InputRow.
// Each field has one leading and one trailing double quote removed, if present.
// Fields past the third are ignored.
func SplitRow(line string) (InputRow, error) {
	fields := strings.Split(line, ",")
	if len(fields) < MinFields {
		return InputRow{}, fmt.Errorf("expected %d fields, got %d", MinFields, len(fields))
	}

	return InputRow{
		Vertex1:   unquote(fields[0]),
		Vertex2:   unquote(fields[1]),
		Timestamp: unquote(fields[2]),
	}, nil
}

func unquote(field string) string {
	field = strings.TrimPrefix(field, `"`)
	return strings.TrimSuffix(field, `"`)
}
