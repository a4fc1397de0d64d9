package output

import (
	"fmt"
	"strings"
)

// Format is the output format of the scan report.
type Format string

const (
	FormatText Format = "text" // Human-readable report (default)
	FormatJSON Format = "json" // One JSON object per line (JSONL-style)
)

// ParseFormat parses the output format string. If s is empty, it returns
// FormatText (default).
func ParseFormat(s string) (Format, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return FormatText, nil
	}
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use text or json)", s)
	}
}
