package greeter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errTrailingData = errors.New("unexpected data after JSON value")

// DecodeError reports a greet body that is not a JSON string.
type DecodeError struct {
	// Kind is the JSON kind that was found instead of a string, or empty
	// when the body was not valid JSON at all.
	Kind string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("expected a JSON string, got %s", e.Kind)
	}
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeName reads a single JSON value from r. A string is returned as is,
// null yields the empty name; anything else is a *DecodeError.
func DecodeName(r io.Reader) (string, error) {
	var raw json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return "", &DecodeError{Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return "", &DecodeError{Err: errTrailingData}
	}

	switch kind := jsonKind(raw); kind {
	case "string":
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return "", &DecodeError{Err: err}
		}
		return name, nil
	case "null":
		return "", nil
	default:
		return "", &DecodeError{Kind: kind}
	}
}

func jsonKind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
