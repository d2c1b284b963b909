package normalize_test

import (
	"encoding/json"
	"strings"
	"testing"

	// Packages
	wpmcp "github.com/mutablelogic/go-wpmcp"
	normalize "github.com/mutablelogic/go-wpmcp/pkg/normalize"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

const escaped = `{"title":"Coffee","content":"<p>one</p>\n<p>two</p>","excerpt":"Short","categories":["Health"],"tags":["coffee","caffeine"]}`

///////////////////////////////////////////////////////////////////////////////
// REPAIR

func Test_repair_001(t *testing.T) {
	// Newlines and tabs inside strings are escaped, carriage returns dropped
	assert := assert.New(t)
	assert.Equal(`{"a":"x\ny\tz"}`, normalize.Repair("{\"a\":\"x\r\ny\tz\"}"))
}

func Test_repair_002(t *testing.T) {
	// Whitespace outside strings is untouched
	assert := assert.New(t)
	in := "{\n\t\"a\": \"b\",\r\n\t\"c\": 1\n}"
	assert.Equal(in, normalize.Repair(in))
}

func Test_repair_003(t *testing.T) {
	// An escaped quote does not end the string
	assert := assert.New(t)
	assert.Equal(`{"a":"say \"hi\"\nthere"}`, normalize.Repair("{\"a\":\"say \\\"hi\\\"\nthere\"}"))
}

func Test_repair_004(t *testing.T) {
	// An escaped backslash clears the escape, so the next quote ends the string
	assert := assert.New(t)
	in := "{\"a\":\"c:\\\\\",\n\"b\":\"x\ny\"}"
	out := normalize.Repair(in)
	assert.Equal("{\"a\":\"c:\\\\\",\n\"b\":\"x\\ny\"}", out)

	var v map[string]string
	assert.NoError(json.Unmarshal([]byte(out), &v))
	assert.Equal(`c:\`, v["a"])
	assert.Equal("x\ny", v["b"])
}

func Test_repair_005(t *testing.T) {
	// Existing escape sequences are preserved
	assert := assert.New(t)
	assert.Equal(escaped, normalize.Repair(escaped))
}

///////////////////////////////////////////////////////////////////////////////
// FENCE

func Test_fence_001(t *testing.T) {
	// Fences with and without a language tag are stripped
	assert := assert.New(t)
	assert.Equal(`{"a":1}`, normalize.StripFence("```json\n{\"a\":1}\n```"))
	assert.Equal(`{"a":1}`, normalize.StripFence("  ```\n{\"a\":1}\n```  \n"))
	assert.Equal(`{"a":1}`, normalize.StripFence("```json{\"a\":1}```"))
	assert.Equal(`{"a":1}`, normalize.StripFence(" {\"a\":1} "))
}

///////////////////////////////////////////////////////////////////////////////
// NORMALIZE

func Test_normalize_001(t *testing.T) {
	// A well formed document is returned unchanged
	assert := assert.New(t)
	doc, err := normalize.Normalize(escaped)
	require.NoError(t, err)
	assert.Equal("Coffee", doc.Title)
	assert.Equal("<p>one</p>\n<p>two</p>", doc.Content)
	assert.Equal("Short", doc.Excerpt)
	assert.Equal([]string{"Health"}, doc.Categories)
	assert.Equal([]string{"coffee", "caffeine"}, doc.Tags)
}

func Test_normalize_002(t *testing.T) {
	// A literal newline inside a string gives the same document as the escaped form
	assert := assert.New(t)
	raw := strings.Replace(escaped, `\n`, "\n", 1)
	assert.NotEqual(raw, escaped)

	var expected schema.GeneratedDocument
	require.NoError(t, json.Unmarshal([]byte(escaped), &expected))

	doc, err := normalize.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(expected, *doc)
}

func Test_normalize_003(t *testing.T) {
	// A fenced document gives the same document as the unwrapped text
	assert := assert.New(t)
	expected, err := normalize.Normalize(escaped)
	require.NoError(t, err)
	for _, wrapped := range []string{
		"```json\n" + escaped + "\n```",
		"```\n" + escaped + "\n```",
		"\n\n```json\n" + escaped + "\n```\n",
	} {
		doc, err := normalize.Normalize(wrapped)
		if assert.NoError(err, wrapped) {
			assert.Equal(expected, doc)
		}
	}
}

func Test_normalize_004(t *testing.T) {
	// Missing required fields always fail
	assert := assert.New(t)
	for _, raw := range []string{
		`{"content":"c","excerpt":"e"}`,
		`{"title":"t","excerpt":"e"}`,
		`{"title":"t","content":"c"}`,
		`{"title":null,"content":"c","excerpt":"e"}`,
	} {
		doc, err := normalize.Normalize(raw)
		assert.ErrorIs(err, wpmcp.ErrNormalization, raw)
		assert.ErrorContains(err, "missing required field", raw)
		assert.Nil(doc)
	}
}

func Test_normalize_005(t *testing.T) {
	// Absent categories and tags default to empty sequences
	assert := assert.New(t)
	doc, err := normalize.Normalize(`{"title":"t","content":"c","excerpt":"e"}`)
	require.NoError(t, err)
	assert.NotNil(doc.Categories)
	assert.NotNil(doc.Tags)
	assert.Empty(doc.Categories)
	assert.Empty(doc.Tags)
}

func Test_normalize_006(t *testing.T) {
	// Unparseable text fails with a bounded snippet
	assert := assert.New(t)
	raw := "Here is your article: " + strings.Repeat("x", 1000)
	doc, err := normalize.Normalize(raw)
	assert.Nil(doc)
	assert.ErrorIs(err, wpmcp.ErrNormalization)
	assert.Contains(err.Error(), "Here is your article")
	assert.Less(len(err.Error()), 700)
}

func Test_normalize_007(t *testing.T) {
	// A JSON value which is not an object fails
	assert := assert.New(t)
	for _, raw := range []string{`null`, `[1,2]`, `"title"`} {
		_, err := normalize.Normalize(raw)
		assert.ErrorIs(err, wpmcp.ErrNormalization, raw)
	}
}
