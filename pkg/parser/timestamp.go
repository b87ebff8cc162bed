package parser

import (
	"fmt"
	"regexp"
	"time"
)

// Fixed edge timestamp format.
const (
	TimestampPattern = `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`
	TimestampLayout  = "2006-01-02 15:04:05"
)

// TimestampParser parses edge timestamps into Unix seconds.
type TimestampParser struct {
	pattern *regexp.Regexp
	layout  string
}

// NewTimestampParser creates a parser for the fixed YYYY-MM-DD HH:MM:SS format.
func NewTimestampParser() *TimestampParser {
	return &TimestampParser{
		pattern: regexp.MustCompile(TimestampPattern),
		layout:  TimestampLayout,
	}
}

// Parse converts a timestamp string to seconds since the Unix epoch.
// The wall-clock value is taken as UTC. The result is negative for dates before 1970.
//
// The pattern enforces the exact field widths, which time.Parse alone does not
// (it accepts a one-digit hour). time.Parse then rejects impossible dates and times.
func (p *TimestampParser) Parse(s string) (int64, error) {
	if !p.pattern.MatchString(s) {
		return 0, fmt.Errorf("timestamp %q does not match format YYYY-MM-DD HH:MM:SS", s)
	}

	ts, err := time.Parse(p.layout, s)
	if err != nil {
		return 0, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}

	return ts.Unix(), nil
}
