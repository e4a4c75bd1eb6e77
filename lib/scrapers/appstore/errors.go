package appstore

import "fmt"

// FetchError reports a transport failure or an unexpected HTTP status.
// These are surfaced to the caller as-is, there is no retry policy.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a response whose shape did not match expectations.
// An empty-but-well-formed result set is never a ParseError.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
