// Package detector recognizes timestamp formats the converter does not accept,
// so rejected rows can be reported with a useful hint.
package detector

import (
	"fmt"
	"strings"
)

// Detector matches timestamp strings against known formats.
type Detector struct {
	formats []*TimestampFormat
}

// New creates a new Detector with default formats.
func New() *Detector {
	return &Detector{formats: DefaultFormats()}
}

// Identify returns the first known format that matches the whole timestamp,
// or nil if none does. Surrounding whitespace is ignored.
func (d *Detector) Identify(ts string) *TimestampFormat {
	ts = strings.TrimSpace(ts)
	for _, f := range d.formats {
		if f.Pattern.MatchString(ts) {
			return f
		}
	}
	return nil
}

// Hint explains how a rejected timestamp differs from the accepted format.
func (d *Detector) Hint(ts string) string {
	f := d.Identify(ts)
	switch {
	case f == nil:
		return fmt.Sprintf("%q is not a recognized timestamp; expected YYYY-MM-DD HH:MM:SS", ts)
	case f.Supported && ts != strings.TrimSpace(ts):
		return fmt.Sprintf("%q has surrounding whitespace; remove it", ts)
	case f.Supported:
		return fmt.Sprintf("%q has the right shape but is not a valid calendar date or time", ts)
	case f.Ambiguous:
		return fmt.Sprintf("%q looks like %s (day/month order is ambiguous); convert it to YYYY-MM-DD HH:MM:SS", ts, f.Name)
	default:
		return fmt.Sprintf("%q looks like %s; convert it to YYYY-MM-DD HH:MM:SS", ts, f.Name)
	}
}
