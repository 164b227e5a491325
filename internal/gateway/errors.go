package gateway

import "fmt"

// RemoteError is a domain error reported by the backend (bad credentials,
// duplicate username, unknown action). Message carries the backend text
// verbatim.
type RemoteError struct {
	Action  string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("remote error: %s", e.Message)
	}
	return fmt.Sprintf("remote error on %s: %s", e.Action, e.Message)
}

// NetworkError is a transport-level failure: the call never produced a
// well-formed response (connection, timeout, malformed JSON).
type NetworkError struct {
	Action string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return fmt.Sprintf("network error on %s: %v", e.Action, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
