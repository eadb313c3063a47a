package httpreq

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/headers"
	"github.com/src-bin/gatewayfixtures/lambdautil"
)

const jsonBody = `{"hi":"there"}`

// newV2 builds the parts every HTTP API fixture has in common: a route,
// the baseline headers with any overrides, and the cookies array API Gateway
// splits out of the cookie header.
func newV2(method, routeKey, path string, overrides map[string]string) *V2 {
	return &V2{events.APIGatewayV2HTTPRequest{
		Version:        "2.0",
		RouteKey:       routeKey,
		RawPath:        path,
		RawQueryString: "",
		Cookies:        []string{headers.Cookie},
		Headers:        headers.Build(headers.Options{Overrides: overrides}).Headers,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			RouteKey: routeKey,
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    method,
				Path:      path,
				Protocol:  Protocol,
				SourceIP:  SourceIP,
				UserAgent: UserAgent,
			},
		},
		IsBase64Encoded: false,
	}}
}

func newV2Body(method, contentType, body string, isBase64Encoded bool) *V2 {
	r := newV2(method, method+" /form", "/form", map[string]string{"content-type": contentType})
	r.Body = body
	r.IsBase64Encoded = isBase64Encoded
	return r
}

var v2 = gateway.Table[*V2]{

	// get /
	"getIndex": func() *V2 {
		return newV2("GET", "GET /", "/", nil)
	},

	// get /?whats=up
	"getWithQueryString": func() *V2 {
		r := newV2("GET", "GET /", "/", nil)
		r.RawQueryString = "whats=up"
		r.QueryStringParameters = map[string]string{"whats": "up"}
		return r
	},

	// get /?whats=up&whats=there
	// HTTP APIs join repeated keys with commas.
	"getWithQueryStringDuplicateKey": func() *V2 {
		r := newV2("GET", "GET /", "/", nil)
		r.RawQueryString = "whats=up&whats=there"
		r.QueryStringParameters = map[string]string{"whats": "up,there"}
		return r
	},

	// get /nature/:activities (/nature/hiking)
	"getWithParam": func() *V2 {
		r := newV2("GET", "GET /nature/{activities}", "/nature/hiking", nil)
		r.PathParameters = map[string]string{"nature": "hiking"}
		return r
	},

	// get /{proxy+} (/nature/hiking)
	"getProxyPlus": func() *V2 {
		r := newV2("GET", "GET /{proxy+}", "/nature/hiking", nil)
		r.PathParameters = map[string]string{"proxy": "nature/hiking"}
		return r
	},

	// $default (/nature/hiking), the route of last resort
	"get$default": func() *V2 {
		return newV2("GET", "$default", "/nature/hiking", nil)
	},

	// get /path/* (/path/hi/there)
	"getCatchall": func() *V2 {
		r := newV2("GET", "GET /path/{proxy+}", "/path/hi/there", nil)
		r.PathParameters = map[string]string{"proxy": "hi/there"}
		return r
	},

	// get /:activities/{proxy+} (/nature/hiking/wilderness)
	"getWithParamAndCatchall": func() *V2 {
		r := newV2("GET", "GET /{activities}/{proxy+}", "/nature/hiking/wilderness", nil)
		r.PathParameters = map[string]string{
			"activities": "nature",
			"proxy":      "hiking/wilderness",
		}
		return r
	},

	// get / accepting brotli
	"getWithBrotli": func() *V2 {
		return newV2("GET", "GET /", "/", map[string]string{"accept-encoding": "gzip, br, deflate"})
	},

	// get / accepting gzip
	"getWithGzip": func() *V2 {
		return newV2("GET", "GET /", "/", map[string]string{"accept-encoding": "gzip, deflate"})
	},

	// post /form (JSON)
	"postJson": func() *V2 {
		return newV2Body("POST", "application/json", jsonBody, false)
	},

	// post /form (form URL encoded)
	"postFormURL": func() *V2 {
		return newV2Body("POST", "application/x-www-form-urlencoded", lambdautil.Base64("hi=there"), true)
	},

	// post /form (multipart form data)
	// Not valid multipart framing; rejecting it is the consumer's job.
	"postMultiPartFormData": func() *V2 {
		return newV2Body("POST", "multipart/form-data", lambdautil.Base64("hi there"), true)
	},

	// post /form (octet stream)
	"postOctetStream": func() *V2 {
		return newV2Body("POST", "application/octet-stream", lambdautil.Base64("hi there\n"), true)
	},

	// put /form (JSON)
	"putJson": func() *V2 {
		return newV2Body("PUT", "application/json", jsonBody, false)
	},

	// patch /form (JSON)
	"patchJson": func() *V2 {
		return newV2Body("PATCH", "application/json", jsonBody, false)
	},

	// delete /form (JSON)
	"deleteJson": func() *V2 {
		return newV2Body("DELETE", "application/json", jsonBody, false)
	},
}
