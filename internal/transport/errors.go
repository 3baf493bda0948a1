package transport

import "fmt"

// ErrorKind classifies a call failure.
type ErrorKind string

const (
	// KindUnknownServer means the caller referenced a server name that was
	// never registered. No connection attempt is made.
	KindUnknownServer ErrorKind = "unknown_server"

	// KindToolError means the remote tool ran and reported a failure.
	KindToolError ErrorKind = "tool_error"

	// KindCallFailed covers every other transport-level failure during a
	// call, including timeouts. Potentially transient.
	KindCallFailed ErrorKind = "call_failed"
)

// CallError is the single error contract surfaced by the call path. It is
// constructed at the failure site and carries the server and, where known,
// the tool involved.
type CallError struct {
	Kind    ErrorKind
	Message string
	Server  string
	Tool    string
	Err     error
}

func (e *CallError) Error() string {
	if e.Tool != "" {
		return fmt.Sprintf("%s: server %q, tool %q: %s", e.Kind, e.Server, e.Tool, e.Message)
	}
	return fmt.Sprintf("%s: server %q: %s", e.Kind, e.Server, e.Message)
}

func (e *CallError) Unwrap() error { return e.Err }
