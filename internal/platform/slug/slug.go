package slug

import (
	"regexp"
	"strings"
)

const (
	maxLen   = 60
	fallback = "cgpa-report"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Make turns a report title into a file-name stem. "+" survives as "plus" so band names such
// as "A+" stay distinct from "A".
func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, "+", " plus ")
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	if s == "" {
		return fallback
	}
	return s
}
