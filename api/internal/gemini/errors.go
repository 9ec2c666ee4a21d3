package gemini

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey     = errors.New("GEMINI_API_KEY is empty")
	ErrNoCandidates = errors.New("gemini: no candidates in response")
	ErrNoText       = errors.New("gemini: first candidate has no text part")
	ErrBadResponse  = errors.New("gemini: malformed response body")
)

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini %d: %s", e.Code, e.Body)
}
