package llm

import (
	"fmt"
)

// ErrCredentialMissing indicates no API key was configured for the
// endpoint. Surfaced at construction time, never mid-pipeline.
type ErrCredentialMissing struct {
	EnvVar string
}

func (e *ErrCredentialMissing) Error() string {
	if e.EnvVar != "" {
		return fmt.Sprintf("API credential missing: set %s", e.EnvVar)
	}
	return "API credential missing"
}

// ErrTransport indicates the request never produced an HTTP response:
// connection failure, DNS failure, or timeout.
type ErrTransport struct {
	Timeout bool
	Err     error
}

func (e *ErrTransport) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrRemoteStatus indicates the endpoint answered with a non-success
// HTTP status.
type ErrRemoteStatus struct {
	Code int
	Err  error
}

func (e *ErrRemoteStatus) Error() string {
	return fmt.Sprintf("remote returned status %d: %v", e.Code, e.Err)
}

func (e *ErrRemoteStatus) Unwrap() error { return e.Err }

// ErrMalformedEnvelope indicates the response body was readable but
// missing the expected structure (no completion choice present).
type ErrMalformedEnvelope struct {
	Err error
}

func (e *ErrMalformedEnvelope) Error() string {
	return fmt.Sprintf("malformed response envelope: %v", e.Err)
}

func (e *ErrMalformedEnvelope) Unwrap() error { return e.Err }

// ErrMalformedContent indicates structured output was requested but
// the completion text failed to decode as JSON or did not conform to
// the requested schema. Callers use this to tell "model declined" from
// "model answered but not as JSON".
type ErrMalformedContent struct {
	Content string
	Err     error
}

func (e *ErrMalformedContent) Error() string {
	return fmt.Sprintf("malformed structured content: %v", e.Err)
}

func (e *ErrMalformedContent) Unwrap() error { return e.Err }
