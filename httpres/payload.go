// Package httpres holds mock handler return values for both API Gateway
// proxy payload formats. A handler may return anything at all, so these
// include bare primitives and deliberately malformed payloads alongside
// well-formed ones.
package httpres

import (
	"encoding/json"
	"fmt"
)

// V2Payload is a structured HTTP API handler response. StatusCode and Body
// are interface{} because the fixtures need to express wrong types (a
// string status code, a raw []byte body) as well as right ones.
type V2Payload struct {
	StatusCode      interface{}       `json:"statusCode,omitempty"`
	Headers         map[string]string `json:"headers,omitempty"`
	Body            interface{}       `json:"body,omitempty"`
	Cookies         []string          `json:"cookies,omitempty"`
	IsBase64Encoded bool              `json:"isBase64Encoded,omitempty"`
	Compression     Compression       `json:"compression,omitempty"`
}

// V1Payload is a REST API proxy response. It has neither cookies nor a
// compression preference. MultiValueHeaders values should be []string but
// are interface{} so that malformed fixtures can say otherwise.
type V1Payload struct {
	StatusCode        interface{}            `json:"statusCode,omitempty"`
	Headers           map[string]string      `json:"headers,omitempty"`
	MultiValueHeaders map[string]interface{} `json:"multiValueHeaders,omitempty"`
	Body              interface{}            `json:"body,omitempty"`
	IsBase64Encoded   bool                   `json:"isBase64Encoded,omitempty"`
}

// Compression is a response's content-encoding preference. The zero value
// expresses no preference; CompressionDisabled travels as JSON false.
type Compression string

const (
	CompressionBrotli   Compression = "br"
	CompressionDisabled Compression = "disabled"
	CompressionGzip     Compression = "gzip"
)

func (c Compression) MarshalJSON() ([]byte, error) {
	if c == CompressionDisabled {
		return []byte("false"), nil
	}
	return json.Marshal(string(c))
}

func (c *Compression) UnmarshalJSON(b []byte) error {
	var enabled bool
	if err := json.Unmarshal(b, &enabled); err == nil {
		if enabled {
			return CompressionError(b)
		}
		*c = CompressionDisabled
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch Compression(s) {
	case CompressionBrotli, CompressionGzip:
	default:
		return CompressionError(b)
	}
	*c = Compression(s)
	return nil
}

type CompressionError string

func (err CompressionError) Error() string {
	return fmt.Sprintf("compression %s not supported", string(err))
}
