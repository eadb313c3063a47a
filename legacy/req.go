package legacy

import (
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/headers"
)

func newRequest(method, path string) *Request {
	return &Request{
		Body:                  map[string]interface{}{},
		Path:                  path,
		Headers:               headers.Legacy(nil),
		Method:                method,
		HTTPMethod:            method,
		Params:                map[string]string{},
		Query:                 map[string]string{},
		QueryStringParameters: map[string]string{},
	}
}

func newFormRequest(method string) *Request {
	r := newRequest(method, "/form")
	r.Body = map[string]interface{}{"hi": "there"}
	return r
}

var req = gateway.Table[*Request]{

	// get /
	"getIndex": func() *Request {
		return newRequest("GET", "/")
	},

	// get /?whats=up
	"getWithQueryString": func() *Request {
		r := newRequest("GET", "/")
		r.Query = map[string]string{"whats": "up"}
		r.QueryStringParameters = map[string]string{"whats": "up"}
		return r
	},

	// get /nature/hiking
	"getWithParam": func() *Request {
		r := newRequest("GET", "/nature/hiking")
		r.Params = map[string]string{"activities": "hiking"}
		return r
	},

	// post /form
	// Covers both JSON and form URL-encoded bodies, which arrive parsed.
	"post": func() *Request {
		return newFormRequest("POST")
	},

	// post /form
	// Multipart bodies arrive base64-encoded under a single key.
	"postBinary": func() *Request {
		r := newRequest("POST", "/form")
		r.Body = map[string]interface{}{"base64": "aGVsbG89dGhlcmU="}
		return r
	},

	// put /form
	"put": func() *Request {
		return newFormRequest("PUT")
	},

	// patch /form
	"patch": func() *Request {
		return newFormRequest("PATCH")
	},

	// delete /form
	"delete": func() *Request {
		return newFormRequest("DELETE")
	},
}
