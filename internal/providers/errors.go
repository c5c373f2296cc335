package providers

import (
	"errors"
	"fmt"
)

// NetworkError captures connection failures and non-2xx responses from the
// upstream API.
type NetworkError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s returned status %d", e.Provider, e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s request failed: %v", e.Provider, e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// DecodeError captures responses whose body is not the expected JSON shape.
type DecodeError struct {
	Provider string
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding %s response: %v", e.Provider, e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr, true
	}
	return nil, false
}
