// ABOUTME: Front-matter metadata extraction for note content.
// ABOUTME: Pure text parsing, no I/O; identical input yields identical output.

package meta

import "strings"

const (
	// DefaultTitle is used when the front matter carries no title key.
	DefaultTitle = "Untitled"

	summaryLen = 80
	delim      = "---"
)

// Meta holds the structured fields derived from raw note content.
type Meta struct {
	Title   string
	Tags    []string
	Summary string
}

// Parse derives title, tags and summary from raw note content.
//
// A front-matter block is a leading line of three hyphens, arbitrary
// key/value lines, and a closing line of three hyphens. Recognized keys are
// "title" and "tags" (case-insensitive); everything else is ignored. The
// summary is always the first 80 characters of the body with newlines
// collapsed to spaces, whether or not front matter is present.
func Parse(content string) Meta {
	m := Meta{Title: DefaultTitle}

	body := content
	if block, rest, ok := splitFrontMatter(content); ok {
		body = rest
		for _, line := range strings.Split(block, "\n") {
			key, val, found := strings.Cut(line, ":")
			if !found {
				continue
			}
			val = strings.TrimSpace(val)
			switch strings.ToLower(strings.TrimSpace(key)) {
			case "title":
				m.Title = val
			case "tags":
				m.Tags = splitTags(val)
			}
		}
	}

	summary := []rune(strings.TrimSpace(body))
	if len(summary) > summaryLen {
		summary = summary[:summaryLen]
	}
	m.Summary = strings.ReplaceAll(string(summary), "\n", " ")

	return m
}

// Body returns the content with any leading front-matter block stripped and
// surrounding whitespace trimmed.
func Body(content string) string {
	if _, rest, ok := splitFrontMatter(content); ok {
		content = rest
	}
	return strings.TrimSpace(content)
}

// splitFrontMatter separates a leading front-matter block from the body.
// Returns ok=false when the content does not start with a delimiter line or
// the closing delimiter is missing.
func splitFrontMatter(content string) (block, body string, ok bool) {
	if !strings.HasPrefix(content, delim) {
		return "", "", false
	}
	rest := content[len(delim):]
	switch {
	case strings.HasPrefix(rest, "\n"):
		rest = rest[1:]
	case strings.HasPrefix(rest, "\r\n"):
		rest = rest[2:]
	default:
		return "", "", false
	}

	idx := 0
	for idx <= len(rest) {
		line := rest[idx:]
		next := len(rest) + 1
		if nl := strings.Index(line, "\n"); nl >= 0 {
			line = line[:nl]
			next = idx + nl + 1
		}
		if strings.TrimRight(line, "\r") == delim {
			if next <= len(rest) {
				body = rest[next:]
			}
			return rest[:idx], body, true
		}
		idx = next
	}
	return "", "", false
}

func splitTags(val string) []string {
	var tags []string
	for _, t := range strings.Split(val, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
