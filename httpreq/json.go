package httpreq

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/src-bin/gatewayfixtures/gateway"
)

// The aws-lambda-go event types carry every field API Gateway might ever
// send, most of them empty here, and omit isBase64Encoded when it's false.
// These are the fields the fixtures actually describe, and only those go on
// the wire.

type v2Event struct {
	Version               string            `json:"version"`
	RouteKey              string            `json:"routeKey"`
	RawPath               string            `json:"rawPath"`
	RawQueryString        string            `json:"rawQueryString"`
	Cookies               []string          `json:"cookies"`
	Headers               map[string]string `json:"headers"`
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
	PathParameters        map[string]string `json:"pathParameters,omitempty"`
	RequestContext        v2RequestContext  `json:"requestContext"`
	Body                  string            `json:"body,omitempty"`
	IsBase64Encoded       bool              `json:"isBase64Encoded"`
}

type v2RequestContext struct {
	HTTP     v2HTTP `json:"http"`
	RouteKey string `json:"routeKey"`
}

type v2HTTP struct {
	Method    string `json:"method"`
	Path      string `json:"path"`
	Protocol  string `json:"protocol"`
	SourceIP  string `json:"sourceIp"`
	UserAgent string `json:"userAgent"`
}

func (r V2) MarshalJSON() ([]byte, error) {
	http := r.RequestContext.HTTP
	return gateway.Marshal(v2Event{
		Version:               r.Version,
		RouteKey:              r.RouteKey,
		RawPath:               r.RawPath,
		RawQueryString:        r.RawQueryString,
		Cookies:               r.Cookies,
		Headers:               r.Headers,
		QueryStringParameters: r.QueryStringParameters,
		PathParameters:        r.PathParameters,
		RequestContext: v2RequestContext{
			HTTP: v2HTTP{
				Method:    http.Method,
				Path:      http.Path,
				Protocol:  http.Protocol,
				SourceIP:  http.SourceIP,
				UserAgent: http.UserAgent,
			},
			RouteKey: r.RequestContext.RouteKey,
		},
		Body:            r.Body,
		IsBase64Encoded: r.IsBase64Encoded,
	})
}

func (r *V2) UnmarshalJSON(b []byte) error {
	var e v2Event
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}
	r.APIGatewayV2HTTPRequest = events.APIGatewayV2HTTPRequest{
		Version:               e.Version,
		RouteKey:              e.RouteKey,
		RawPath:               e.RawPath,
		RawQueryString:        e.RawQueryString,
		Cookies:               e.Cookies,
		Headers:               e.Headers,
		QueryStringParameters: e.QueryStringParameters,
		PathParameters:        e.PathParameters,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			RouteKey: e.RequestContext.RouteKey,
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    e.RequestContext.HTTP.Method,
				Path:      e.RequestContext.HTTP.Path,
				Protocol:  e.RequestContext.HTTP.Protocol,
				SourceIP:  e.RequestContext.HTTP.SourceIP,
				UserAgent: e.RequestContext.HTTP.UserAgent,
			},
		},
		Body:            e.Body,
		IsBase64Encoded: e.IsBase64Encoded,
	}
	return nil
}

// v1Event spells out null for absent parameter maps and an absent body.
type v1Event struct {
	Resource                        string              `json:"resource"`
	Path                            string              `json:"path"`
	HTTPMethod                      string              `json:"httpMethod"`
	Headers                         map[string]string   `json:"headers"`
	MultiValueHeaders               map[string][]string `json:"multiValueHeaders"`
	QueryStringParameters           map[string]string   `json:"queryStringParameters"`
	MultiValueQueryStringParameters map[string][]string `json:"multiValueQueryStringParameters"`
	PathParameters                  map[string]string   `json:"pathParameters"`
	Body                            *string             `json:"body"`
	IsBase64Encoded                 bool                `json:"isBase64Encoded"`
	RequestContext                  v1RequestContext    `json:"requestContext"`
}

type v1RequestContext struct {
	HTTPMethod   string     `json:"httpMethod"`
	Path         string     `json:"path"`
	ResourcePath string     `json:"resourcePath"`
	Protocol     string     `json:"protocol"`
	Identity     v1Identity `json:"identity"`
}

type v1Identity struct {
	SourceIP  string `json:"sourceIp"`
	UserAgent string `json:"userAgent"`
}

func (r V1) MarshalJSON() ([]byte, error) {
	var body *string
	if r.Body != "" {
		body = &r.Body
	}
	return gateway.Marshal(v1Event{
		Resource:                        r.Resource,
		Path:                            r.Path,
		HTTPMethod:                      r.HTTPMethod,
		Headers:                         r.Headers,
		MultiValueHeaders:               r.MultiValueHeaders,
		QueryStringParameters:           r.QueryStringParameters,
		MultiValueQueryStringParameters: r.MultiValueQueryStringParameters,
		PathParameters:                  r.PathParameters,
		Body:                            body,
		IsBase64Encoded:                 r.IsBase64Encoded,
		RequestContext: v1RequestContext{
			HTTPMethod:   r.RequestContext.HTTPMethod,
			Path:         r.RequestContext.Path,
			ResourcePath: r.RequestContext.ResourcePath,
			Protocol:     r.RequestContext.Protocol,
			Identity: v1Identity{
				SourceIP:  r.RequestContext.Identity.SourceIP,
				UserAgent: r.RequestContext.Identity.UserAgent,
			},
		},
	})
}

func (r *V1) UnmarshalJSON(b []byte) error {
	var e v1Event
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}
	var body string
	if e.Body != nil {
		body = *e.Body
	}
	r.APIGatewayProxyRequest = events.APIGatewayProxyRequest{
		Resource:                        e.Resource,
		Path:                            e.Path,
		HTTPMethod:                      e.HTTPMethod,
		Headers:                         e.Headers,
		MultiValueHeaders:               e.MultiValueHeaders,
		QueryStringParameters:           e.QueryStringParameters,
		MultiValueQueryStringParameters: e.MultiValueQueryStringParameters,
		PathParameters:                  e.PathParameters,
		Body:                            body,
		IsBase64Encoded:                 e.IsBase64Encoded,
		RequestContext: events.APIGatewayProxyRequestContext{
			HTTPMethod:   e.RequestContext.HTTPMethod,
			Path:         e.RequestContext.Path,
			ResourcePath: e.RequestContext.ResourcePath,
			Protocol:     e.RequestContext.Protocol,
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  e.RequestContext.Identity.SourceIP,
				UserAgent: e.RequestContext.Identity.UserAgent,
			},
		},
	}
	return nil
}
