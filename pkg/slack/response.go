package slack

import (
	"encoding/json"
	"fmt"
)

// Response is the decoded body of one Web API call. Every Web API response
// carries an "ok" indicator; calls whose body has ok=false never produce a
// Response, they produce an *APIError instead.
type Response struct {
	OK      bool   `json:"ok"                yaml:"ok"`
	Error   string `json:"error,omitempty"   yaml:"error,omitempty"`
	Warning string `json:"warning,omitempty" yaml:"warning,omitempty"`

	ResponseMetadata ResponseMetadata `json:"response_metadata,omitempty" yaml:"response_metadata,omitempty"`

	raw []byte
}

// ResponseMetadata carries pagination and warning details.
type ResponseMetadata struct {
	NextCursor string   `json:"next_cursor,omitempty" yaml:"next_cursor,omitempty"`
	Warnings   []string `json:"warnings,omitempty"    yaml:"warnings,omitempty"`
}

// NewResponse decodes body into a Response, keeping the raw bytes for Decode.
func NewResponse(body []byte) (*Response, error) {
	resp := &Response{raw: body}

	err := json.Unmarshal(body, resp)
	if err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}

	return resp, nil
}

// Decode re-unmarshals the full response body into v, for callers that know
// the method's payload shape.
func (r *Response) Decode(v interface{}) error {
	err := json.Unmarshal(r.raw, v)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Raw returns the full decoded body as a generic mapping.
func (r *Response) Raw() (map[string]interface{}, error) {
	var m map[string]interface{}

	err := json.Unmarshal(r.raw, &m)
	if err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}

	return m, nil
}

// Bytes returns the raw response body.
func (r *Response) Bytes() []byte {
	return r.raw
}
