package detector

import "regexp"

// TimestampFormat represents a known timestamp format for detection.
type TimestampFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Anchored pattern matching the whole timestamp
	Supported  bool           // True for the one format the converter accepts
	Examples   []string       // Example timestamps
	Ambiguous  bool           // True if format has date ordering ambiguity (MM/DD vs DD/MM)
}

// DefaultFormats returns the built-in timestamp formats to detect.
// Formats are ordered roughly by specificity (more specific patterns first).
func DefaultFormats() []*TimestampFormat {
	formats := []*TimestampFormat{
		{
			Name:       "Datetime (YYYY-MM-DD HH:MM:SS)",
			PatternStr: `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`,
			Supported:  true,
			Examples:   []string{"2024-01-15 10:30:00"},
		},
		{
			Name:       "ISO 8601 with timezone",
			PatternStr: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?([+-]\d{2}:\d{2}|Z)$`,
			Examples:   []string{"2024-01-15T10:30:00+00:00", "2024-01-15T10:30:00Z"},
		},
		{
			Name:       "ISO 8601",
			PatternStr: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?$`,
			Examples:   []string{"2024-01-15T10:30:00"},
		},
		{
			Name:       "Datetime with fractional seconds",
			PatternStr: `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}[.,]\d+$`,
			Examples:   []string{"2024-01-15 10:30:00.123", "2024-01-15 10:30:00,123"},
		},
		{
			Name:       "Datetime without zero padding",
			PatternStr: `^\d{4}-\d{1,2}-\d{1,2} \d{1,2}:\d{1,2}:\d{1,2}$`,
			Examples:   []string{"2024-1-5 9:30:00"},
		},
		{
			Name:       "Datetime without seconds",
			PatternStr: `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`,
			Examples:   []string{"2024-01-15 10:30"},
		},
		{
			Name:       "Date only",
			PatternStr: `^\d{4}-\d{2}-\d{2}$`,
			Examples:   []string{"2024-01-15"},
		},
		{
			Name:       "Slash datetime (YYYY/MM/DD)",
			PatternStr: `^\d{4}/\d{2}/\d{2}( \d{2}:\d{2}:\d{2})?$`,
			Examples:   []string{"2024/01/15 10:30:00"},
		},
		{
			Name:       "US date format (MM/DD/YYYY)",
			PatternStr: `^\d{2}/\d{2}/\d{4}( \d{2}:\d{2}:\d{2})?$`,
			Examples:   []string{"01/15/2024 10:30:00"},
			Ambiguous:  true,
		},
		{
			Name:       "Unix timestamp (seconds)",
			PatternStr: `^\d{9,10}$`,
			Examples:   []string{"1705315800"},
		},
		{
			Name:       "Unix timestamp (milliseconds)",
			PatternStr: `^\d{13}$`,
			Examples:   []string{"1705315800000"},
		},
	}

	// Compile all patterns
	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
