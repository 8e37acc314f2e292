package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RemoteError is a failed backend call. Message prefers the server's
// single detail string; when the server reports a list of field errors
// their messages are joined. Payload keeps the raw body for
// diagnostics.
type RemoteError struct {
	StatusCode int
	Message    string
	Payload    json.RawMessage
}

func (e *RemoteError) Error() string {
	return e.Message
}

// newRemoteError derives a RemoteError from a non-2xx response body.
func newRemoteError(status int, body []byte) *RemoteError {
	e := &RemoteError{
		StatusCode: status,
		Message:    fmt.Sprintf("HTTP %d", status),
		Payload:    json.RawMessage(body),
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Detail == nil {
		return e
	}

	var single string
	if err := json.Unmarshal(envelope.Detail, &single); err == nil && single != "" {
		e.Message = single
		return e
	}

	var fields []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil && len(fields) > 0 {
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			msgs = append(msgs, f.Msg)
		}
		e.Message = strings.Join(msgs, ", ")
	}
	return e
}
