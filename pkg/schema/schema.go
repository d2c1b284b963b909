package schema

import "encoding/json"

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stringify returns the indented JSON representation of v, which is the
// text carried in a tool call result
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// Snippet returns at most n characters of s, for diagnostics
func Snippet(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}
