package vkord

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// result is a parsed success response. Exactly one of the three fields is
// populated: Ack for an empty body, JSON for a body that parsed as JSON,
// Raw for anything else (e.g. file content served with a JSON content type).
type result struct {
	Ack  bool
	JSON json.RawMessage
	Raw  []byte
}

// parseBody classifies a success response body.
func parseBody(body []byte) *result {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return &result{Ack: true}
	}
	if json.Valid(trimmed) {
		return &result{JSON: json.RawMessage(trimmed)}
	}
	return &result{Raw: body}
}

// decode unmarshals the JSON body into v. It fails when the registry
// answered with an empty or non-JSON body where a document was expected.
func (r *result) decode(v any) error {
	if r.JSON == nil {
		return fmt.Errorf("registry answered without a JSON document")
	}
	if err := json.Unmarshal(r.JSON, v); err != nil {
		return fmt.Errorf("decoding registry response: %w", err)
	}
	return nil
}

// bytes returns the response body verbatim, whatever its shape.
func (r *result) bytes() []byte {
	if r.JSON != nil {
		return []byte(r.JSON)
	}
	return r.Raw
}
