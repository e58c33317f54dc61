package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// Split separates a leading YAML frontmatter block from the document body. Documents without
// frontmatter return an empty map and the content unchanged.
func Split(content string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, fence) {
		return map[string]any{}, content, nil
	}
	rest := strings.TrimPrefix(content, fence)
	idx := strings.Index(rest, "\n"+fence)
	if idx < 0 {
		return nil, "", fmt.Errorf("invalid frontmatter: missing closing fence")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(rest[:idx]), &meta); err != nil {
		return nil, "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	// A null document ("~" or empty) decodes to a nil map.
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, rest[idx+1+len(fence):], nil
}

func Render(meta map[string]any, body string) (string, error) {
	buf := bytes.Buffer{}
	buf.WriteString(fence)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf.WriteString(fence)
	if !strings.HasPrefix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString(body)
	return buf.String(), nil
}
