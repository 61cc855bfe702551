package client

import "fmt"

// TransportError covers any failure to complete an operation against the
// remote store: a network error (StatusCode 0) or a non-success HTTP
// status. Not-found on a get-by-id is reported as common.ErrNotFound
// instead.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote store: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("remote store unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
