/*
normalize extracts a generated document from the raw text returned by a
generation provider, repairing the control characters which providers
commonly emit inside JSON string values.
*/
package normalize

import (
	"encoding/json"
	"strings"

	// Packages
	wpmcp "github.com/mutablelogic/go-wpmcp"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	fence = "```"

	// Number of characters of the offending text carried in an error
	snippetLength = 500
)

var requiredFields = []string{"title", "content", "excerpt"}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Normalize returns the document contained in text, or an ErrNormalization
// error. A document is never returned without a title, content and excerpt.
func Normalize(text string) (*schema.GeneratedDocument, error) {
	text = Repair(StripFence(text))

	// Parse as an object first, so that missing keys can be detected
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, wpmcp.ErrNormalization.Withf("%v: %q", err, schema.Snippet(text, snippetLength))
	} else if fields == nil {
		return nil, wpmcp.ErrNormalization.Withf("not an object: %q", schema.Snippet(text, snippetLength))
	}
	for _, key := range requiredFields {
		if value, exists := fields[key]; !exists || string(value) == "null" {
			return nil, wpmcp.ErrNormalization.With("missing required field: ", key)
		}
	}

	// Decode the document
	var doc schema.GeneratedDocument
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, wpmcp.ErrNormalization.Withf("%v: %q", err, schema.Snippet(text, snippetLength))
	}
	if doc.Categories == nil {
		doc.Categories = []string{}
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}

	// Return success
	return &doc, nil
}

// StripFence trims whitespace and removes a surrounding fenced code block
// marker, which may be tagged with a language
func StripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, fence) {
		return text
	}

	// Remove the opening marker line
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		text = strings.TrimPrefix(strings.TrimPrefix(text, fence), "json")
	}

	// Remove the closing marker
	text = strings.TrimSuffix(strings.TrimSpace(text), fence)
	return strings.TrimSpace(text)
}

// Repair escapes literal newlines and tabs which occur inside quoted
// strings, and drops literal carriage returns inside quoted strings.
// The character after a backslash is always copied unchanged.
func Repair(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/16)

	var inString, escaped bool
	for _, r := range text {
		switch {
		case escaped:
			escaped = false
			b.WriteRune(r)
		case r == '\\':
			escaped = true
			b.WriteRune(r)
		case r == '"':
			inString = !inString
			b.WriteRune(r)
		case inString && r == '\n':
			b.WriteString(`\n`)
		case inString && r == '\t':
			b.WriteString(`\t`)
		case inString && r == '\r':
			// Dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
