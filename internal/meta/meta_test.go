// ABOUTME: Tests for front-matter metadata extraction.
// ABOUTME: Covers delimiter detection, key parsing, and summary derivation.

package meta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFrontMatter(t *testing.T) {
	content := "---\ntitle: My Note\ntags: go, notes, sync\n---\n# Heading\n\nBody text here."

	m := Parse(content)

	assert.Equal(t, "My Note", m.Title)
	assert.Equal(t, []string{"go", "notes", "sync"}, m.Tags)
	assert.Equal(t, "# Heading  Body text here.", m.Summary)
}

func TestParseNoFrontMatter(t *testing.T) {
	content := "Just some plain markdown.\nSecond line."

	m := Parse(content)

	assert.Equal(t, DefaultTitle, m.Title)
	assert.Nil(t, m.Tags)
	assert.Equal(t, "Just some plain markdown. Second line.", m.Summary)
}

func TestParseSummaryTruncation(t *testing.T) {
	body := strings.Repeat("a", 200)

	m := Parse(body)

	assert.Len(t, m.Summary, 80)
	assert.Equal(t, strings.Repeat("a", 80), m.Summary)
}

func TestParseSummaryIgnoresFrontMatter(t *testing.T) {
	content := "---\ntitle: T\n---\n  body starts here  "

	m := Parse(content)

	assert.Equal(t, "body starts here", m.Summary)
}

func TestParseTagTrimming(t *testing.T) {
	content := "---\ntags:  one , two ,, three ,\n---\nx"

	m := Parse(content)

	assert.Equal(t, []string{"one", "two", "three"}, m.Tags)
}

func TestParseKeysCaseInsensitive(t *testing.T) {
	content := "---\nTitle: Caps\nTAGS: a, b\n---\nx"

	m := Parse(content)

	assert.Equal(t, "Caps", m.Title)
	assert.Equal(t, []string{"a", "b"}, m.Tags)
}

func TestParseUnknownKeysIgnored(t *testing.T) {
	content := "---\ntitle: Known\nauthor: someone\ndate: 2024-01-01\n---\nx"

	m := Parse(content)

	assert.Equal(t, "Known", m.Title)
	assert.Nil(t, m.Tags)
}

func TestParseLinesWithoutColonIgnored(t *testing.T) {
	content := "---\nnot a key value line\ntitle: Still Parsed\n---\nx"

	m := Parse(content)

	assert.Equal(t, "Still Parsed", m.Title)
}

func TestParseValueWithColon(t *testing.T) {
	// Only the first colon splits key from value.
	content := "---\ntitle: Notes: Volume 2\n---\nx"

	m := Parse(content)

	assert.Equal(t, "Notes: Volume 2", m.Title)
}

func TestParseUnclosedFrontMatter(t *testing.T) {
	content := "---\ntitle: Dangling\nno closing delimiter"

	m := Parse(content)

	assert.Equal(t, DefaultTitle, m.Title)
	assert.Contains(t, m.Summary, "title: Dangling")
}

func TestParseDelimiterMustStartContent(t *testing.T) {
	content := "intro\n---\ntitle: Late\n---\nx"

	m := Parse(content)

	assert.Equal(t, DefaultTitle, m.Title)
}

func TestParseDeterministic(t *testing.T) {
	content := "---\ntitle: Same\ntags: a, b\n---\nbody"

	first := Parse(content)
	second := Parse(content)

	assert.Equal(t, first, second)
}

func TestParseEmptyContent(t *testing.T) {
	m := Parse("")

	assert.Equal(t, DefaultTitle, m.Title)
	assert.Empty(t, m.Summary)
	assert.Nil(t, m.Tags)
}
