package github

import (
	"fmt"
	"net/http"
	"unicode/utf8"
)

// RequestError is returned when the API answers with a status outside
// {200, 201, 302}. It carries the full response for diagnostics.
type RequestError struct {
	Method string
	URL    string
	Status int
	Header http.Header
	Body   []byte
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("github: %s %s returned %d: %s", e.Method, e.URL, e.Status, summarize(e.Body))
}

// summarize keeps error messages bounded in size, cutting on a rune
// boundary so a multi-byte character is never split.
func summarize(body []byte) string {
	const max = 200
	s := string(body)
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
