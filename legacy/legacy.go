// Package legacy holds the request and response shapes that predate the
// API Gateway proxy integration: requests arrive already parsed into
// params, query and body, and responses are described with shorthand
// fields like status, type and cookie.
package legacy

import (
	"encoding/base64"

	"github.com/src-bin/gatewayfixtures/gateway"
)

type Request struct {
	Body                  map[string]interface{} `json:"body"`
	Path                  string                 `json:"path"`
	Headers               map[string]string      `json:"headers"`
	Method                string                 `json:"method"`
	HTTPMethod            string                 `json:"httpMethod"`
	Params                map[string]string      `json:"params"`
	Query                 map[string]string      `json:"query"`
	QueryStringParameters map[string]string      `json:"queryStringParameters"`
}

func (*Request) Generation() gateway.Generation { return gateway.Legacy }

func (r *Request) RequestMethod() string { return r.Method }

func (r *Request) RequestPath() string { return r.Path }

// DecodedBody renders the pre-parsed body back into what was on the wire:
// nothing for an empty body, the decoded bytes for a binary body (which
// arrives as {"base64": ...}), and compact JSON for anything else.
func (r *Request) DecodedBody() (string, error) {
	if len(r.Body) == 0 {
		return "", nil
	}
	if encoded, ok := r.Body["base64"].(string); ok && len(r.Body) == 1 {
		b, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := gateway.Marshal(r.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Payload is a structured legacy response. Status, Code and StatusCode are
// synonyms; the fixtures exercise each of them separately.
type Payload struct {
	Status          int               `json:"status,omitempty"`
	Code            int               `json:"code,omitempty"`
	StatusCode      int               `json:"statusCode,omitempty"`
	Type            string            `json:"type,omitempty"`
	Body            string            `json:"body,omitempty"`
	Cookie          string            `json:"cookie,omitempty"`
	Cors            bool              `json:"cors,omitempty"`
	Headers         map[string]string `json:"headers,omitempty"`
	Location        string            `json:"location,omitempty"`
	IsBase64Encoded bool              `json:"isBase64Encoded,omitempty"`
}

func GetRequest(name string) (*Request, error) { return req.Get(name) }

func GetResponse(name string) (gateway.Response, error) { return res.Get(name) }

func RequestNames() []string { return req.Names() }

func ResponseNames() []string { return res.Names() }

// Requests builds every legacy request fixture.
func Requests() map[string]*Request { return req.Build() }

// Responses builds every legacy response fixture.
func Responses() map[string]gateway.Response { return res.Build() }
