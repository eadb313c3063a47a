package httpreq

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/headers"
	"github.com/src-bin/gatewayfixtures/lambdautil"
)

// newV1 builds the parts every REST API fixture has in common. REST APIs
// send null rather than empty maps for absent parameters and an absent body,
// which nil maps and an empty Body reproduce.
func newV1(method, resource, path string, overrides map[string]string) *V1 {
	h := headers.Build(headers.Options{Overrides: overrides, Naming: headers.Capitalized})
	return &V1{events.APIGatewayProxyRequest{
		Resource:                        resource,
		Path:                            path,
		HTTPMethod:                      method,
		Headers:                         h.Headers,
		MultiValueHeaders:               h.MultiValueHeaders,
		QueryStringParameters:           nil,
		MultiValueQueryStringParameters: nil,
		PathParameters:                  nil,
		IsBase64Encoded:                 false,
		RequestContext: events.APIGatewayProxyRequestContext{
			HTTPMethod:   method,
			Path:         path,
			ResourcePath: resource,
			Protocol:     Protocol,
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  SourceIP,
				UserAgent: UserAgent,
			},
		},
	}}
}

// newV1Body builds a /form fixture. REST APIs configured for binary media
// types base64-encode every body, JSON included.
func newV1Body(method, contentType, body string) *V1 {
	r := newV1(method, "/form", "/form", map[string]string{"content-type": contentType})
	r.Body = lambdautil.Base64(body)
	r.IsBase64Encoded = true
	return r
}

var v1 = gateway.Table[*V1]{

	// get /
	"getIndex": func() *V1 {
		return newV1("GET", "/", "/", nil)
	},

	// get /?whats=up
	"getWithQueryString": func() *V1 {
		r := newV1("GET", "/", "/", nil)
		r.QueryStringParameters = map[string]string{"whats": "up"}
		r.MultiValueQueryStringParameters = map[string][]string{"whats": {"up"}}
		return r
	},

	// get /?whats=up&whats=there
	// REST APIs keep only the last value in the single-value map.
	"getWithQueryStringDuplicateKey": func() *V1 {
		r := newV1("GET", "/", "/", nil)
		r.QueryStringParameters = map[string]string{"whats": "there"}
		r.MultiValueQueryStringParameters = map[string][]string{"whats": {"up", "there"}}
		return r
	},

	// get /nature/hiking
	"getWithParam": func() *V1 {
		r := newV1("GET", "/nature/{activities}", "/nature/hiking", nil)
		r.PathParameters = map[string]string{"activities": "hiking"}
		return r
	},

	// get /{proxy+}
	"getProxyPlus": func() *V1 {
		r := newV1("GET", "/{proxy+}", "/nature/hiking", nil)
		r.PathParameters = map[string]string{"proxy": "nature/hiking"}
		return r
	},

	// get /path/* (/path/hi/there)
	"getCatchall": func() *V1 {
		r := newV1("GET", "/path/{proxy+}", "/path/hi/there", nil)
		r.PathParameters = map[string]string{"proxy": "hi/there"}
		return r
	},

	// get /:activities/{proxy+} (/nature/hiking/wilderness)
	"getWithParamAndCatchall": func() *V1 {
		r := newV1("GET", "/{activities}/{proxy+}", "/nature/hiking/wilderness", nil)
		r.PathParameters = map[string]string{
			"activities": "nature",
			"proxy":      "hiking/wilderness",
		}
		return r
	},

	// post /form (JSON)
	"postJson": func() *V1 {
		return newV1Body("POST", "application/json", jsonBody)
	},

	// post /form (form URL encoded)
	"postFormURL": func() *V1 {
		return newV1Body("POST", "application/x-www-form-urlencoded", "hi=there")
	},

	// post /form (multipart form data)
	// Not valid multipart framing; rejecting it is the consumer's job.
	"postMultiPartFormData": func() *V1 {
		return newV1Body("POST", "multipart/form-data", "hi there")
	},

	// post /form (octet stream)
	"postOctetStream": func() *V1 {
		return newV1Body("POST", "application/octet-stream", "hi there\n")
	},

	// put /form (JSON)
	"putJson": func() *V1 {
		return newV1Body("PUT", "application/json", jsonBody)
	},

	// patch /form (JSON)
	"patchJson": func() *V1 {
		return newV1Body("PATCH", "application/json", jsonBody)
	},

	// delete /form (JSON)
	"deleteJson": func() *V1 {
		return newV1Body("DELETE", "application/json", jsonBody)
	},
}
