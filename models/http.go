package models

import (
	"encoding/json"
	"net/url"
)

// DispatchRequest describes one outbound call to a Dragonchain node before it
// is signed. The dispatcher adds the identity, timestamp and Authorization
// headers.
type DispatchRequest struct {
	// Method is the HTTP verb. It is upper-cased before signing.
	Method string

	// Path is the request path including the leading slash. It must not
	// contain the query string.
	Path string

	// Query holds optional query parameters. They are encoded onto Path and
	// the result is both sent and signed.
	Query url.Values

	// Body is the raw request body. Empty for GET and DELETE.
	Body []byte

	// CallbackURL is sent as X-Callback-URL when non-empty.
	CallbackURL string

	// RawText tells the dispatcher not to expect a JSON response body. The
	// text is returned as a JSON string in [Response.Body].
	RawText bool
}

// Response is the normalised result of a dispatched request. Non-2xx statuses
// are returned here, not as errors.
type Response struct {
	// Status is the HTTP status code.
	Status int `json:"status"`

	// OK is true for 2xx statuses.
	OK bool `json:"ok"`

	// Body is the response body and always holds valid JSON. An empty body
	// is null; text that is not JSON is carried as a JSON string.
	Body json.RawMessage `json:"response"`
}

// Text returns the body as a string. A JSON string body is unquoted, any
// other body is returned verbatim.
func (r Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Body, &s); err == nil {
		return s
	}
	return string(r.Body)
}

// Decode unmarshals the JSON body into v.
func (r Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}
