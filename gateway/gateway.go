// Package gateway holds the types shared by every fixture table: the
// Generation tag, the Request interface all request fixtures satisfy, and
// the Response wrapper around handler return values.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Request is implemented by every request fixture, regardless of generation,
// so that consumers can compare the logical HTTP request across shapes.
type Request interface {
	Generation() Generation
	RequestMethod() string
	RequestPath() string

	// DecodedBody returns the body as the handler should see it, with any
	// base64 encoding removed.
	DecodedBody() (string, error)
}

// Response is one mock handler return value. Value is exactly what the
// handler returned: nil, a bare primitive, a []byte, or one of the payload
// types from the httpres and legacy packages. Malformed marks the values
// that are wrong on purpose, for exercising a consumer's error handling.
type Response struct {
	Generation Generation
	Value      interface{}
	Malformed  bool
}

func (r Response) MarshalJSON() ([]byte, error) {
	return Marshal(r.Value)
}

// Marshal is json.Marshal without HTML escaping. Fixture bodies are full of
// markup and a MarshalJSON method's output can't be unescaped later.
func Marshal(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// NotFoundError is returned when a table has no fixture by the given name.
type NotFoundError string

func (err NotFoundError) Error() string {
	return fmt.Sprintf("fixture not found: %s", string(err))
}
