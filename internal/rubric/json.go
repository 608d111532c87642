package rubric

import (
	"encoding/json"
	"fmt"
)

// ErrMalformedJSON indicates text that was expected to be JSON but did
// not decode. Distinct from a successful decode of an empty object:
// callers can tell "model declined" from "model returned {}".
type ErrMalformedJSON struct {
	Content string
	Err     error
}

func (e *ErrMalformedJSON) Error() string {
	return fmt.Sprintf("malformed JSON: %v", e.Err)
}

func (e *ErrMalformedJSON) Unwrap() error { return e.Err }

// ExtractJSON strictly decodes text into v. Failure is a typed
// *ErrMalformedJSON carrying the offending text, never a panic.
func ExtractJSON(text string, v any) error {
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return &ErrMalformedJSON{Content: text, Err: err}
	}
	return nil
}
