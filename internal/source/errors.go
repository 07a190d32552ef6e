package source

import (
	"errors"
	"fmt"
)

// Kind classifies a fetch failure
type Kind string

const (
	KindRateLimited       Kind = "rate_limited"       // HTTP 429, retry later
	KindFetchFailed       Kind = "fetch_failed"       // Other non-2xx status or transport error
	KindMalformedResponse Kind = "malformed_response" // Body is not JSON at all
)

// Sentinels matched by FetchError.Is
var (
	ErrRateLimited       = errors.New("rate limited")
	ErrFetchFailed       = errors.New("fetch failed")
	ErrMalformedResponse = errors.New("malformed response")
)

// RateLimitMessage is shown to users when the launch API throttles us
const RateLimitMessage = "API rate limit reached. Please try again later."

// FetchError is returned by every source operation that fails
type FetchError struct {
	Kind       Kind
	StatusCode int // 0 for transport errors
	URL        string
	Message    string // User-facing message
	Err        error  // Underlying cause, may be nil
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is lets errors.Is match the kind sentinels
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrRateLimited:
		return e.Kind == KindRateLimited
	case ErrFetchFailed:
		return e.Kind == KindFetchFailed
	case ErrMalformedResponse:
		return e.Kind == KindMalformedResponse
	}
	return false
}

// UserMessage extracts a message suitable for display from any error
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) && fe.Message != "" {
		return fe.Message
	}
	return err.Error()
}

func rateLimited(url string) *FetchError {
	return &FetchError{Kind: KindRateLimited, StatusCode: 429, URL: url, Message: RateLimitMessage}
}

func fetchFailed(url string, status int, err error) *FetchError {
	return &FetchError{Kind: KindFetchFailed, StatusCode: status, URL: url, Message: "API request failed", Err: err}
}

func malformed(url string, err error) *FetchError {
	return &FetchError{Kind: KindMalformedResponse, URL: url, Message: "API returned an unreadable response", Err: err}
}
