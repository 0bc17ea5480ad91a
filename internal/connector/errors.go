package connector

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthenticated marks failures caused by a missing or rejected session
// token. errors.Is matches it for any 401 RemoteError and for authenticated
// calls attempted with no stored token, so callers can redirect to login
// without inspecting status codes.
var ErrUnauthenticated = errors.New("unauthenticated")

// TransportError means the request never produced a response: the server was
// unreachable, the connection dropped, or the context was cancelled. There
// is no server payload to inspect.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed before a response was received: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError means the server responded with a non-2xx status. Body carries
// the server's JSON error payload unmodified; Message is the human-readable
// text extracted from it when the payload has one.
type RemoteError struct {
	Op         string
	StatusCode int
	Body       json.RawMessage
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: server returned status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: server returned status %d", e.Op, e.StatusCode)
}

// Is reports 401 responses as ErrUnauthenticated.
func (e *RemoteError) Is(target error) bool {
	return target == ErrUnauthenticated && e.StatusCode == http.StatusUnauthorized
}

// newRemoteError builds a RemoteError from a non-2xx response body, pulling
// the message out of the `message` or `error` keys the API uses.
func newRemoteError(op string, statusCode int, body []byte) *RemoteError {
	remoteErr := &RemoteError{
		Op:         op,
		StatusCode: statusCode,
		Body:       json.RawMessage(body),
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			remoteErr.Message = payload.Message
		} else {
			remoteErr.Message = payload.Error
		}
	}

	return remoteErr
}
