package llm

import "fmt"

// UpstreamError is returned by clients when the completion service itself failed:
// auth, rate limit, network, or a response that could not be decoded.
type UpstreamError struct {
	Provider string
	Err      error
}

func NewUpstreamError(provider string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Err: err}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
