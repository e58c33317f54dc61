package markdown

import "strings"

// ReplaceBlock swaps the text between start and end markers, appending a fresh block when the
// markers are absent. Text outside the markers is left untouched.
func ReplaceBlock(body, start, end, generated string) string {
	block := start + "\n" + generated + "\n" + end
	i := strings.Index(body, start)
	j := strings.Index(body, end)
	if i >= 0 && j > i {
		return body[:i] + block + body[j+len(end):]
	}
	switch {
	case strings.TrimSpace(body) == "":
		return block + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + block + "\n"
	default:
		return body + "\n\n" + block + "\n"
	}
}
