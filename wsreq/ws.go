// Package wsreq holds mock API Gateway WebSocket API events: the connect and
// disconnect lifecycle events plus messages routed by $default or by an
// action-keyed custom route.
package wsreq

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/headers"
	"github.com/src-bin/gatewayfixtures/lambdautil"
)

const (
	APIID        = "abcdef1234"
	ConnectionID = "ZaB1cDeFgHIaB1c="
	DomainName   = APIID + ".execute-api.us-west-2.amazonaws.com"
	Stage        = "production"

	ConnectedAt      = 1609459200000 // 2021-01-01T00:00:00Z
	RequestTime      = "01/Jan/2021:00:00:00 +0000"
	RequestTimeEpoch = ConnectedAt

	EventTypeConnect    = "CONNECT"
	EventTypeDisconnect = "DISCONNECT"
	EventTypeMessage    = "MESSAGE"
)

// namespace seeds the version 5 UUIDs used as request ids so that the same
// scenario always gets the same id.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://"+DomainName+"/"+Stage))

type Request struct {
	events.APIGatewayWebsocketProxyRequest
}

func (*Request) Generation() gateway.Generation { return gateway.WebSocket }

// RequestMethod is the route key; WebSocket events have no HTTP method
// beyond the GET that upgraded the connection.
func (r *Request) RequestMethod() string { return r.RequestContext.RouteKey }

func (r *Request) RequestPath() string { return "/" + r.RequestContext.Stage }

func (r *Request) DecodedBody() (string, error) {
	return lambdautil.EventBodyWebsocket(&r.APIGatewayWebsocketProxyRequest)
}

// RequestID derives the fixed request id of the named scenario.
func RequestID(name string) string {
	return uuid.NewSHA1(namespace, []byte(name)).String()
}

func newRequest(name, routeKey, eventType string) *Request {
	return &Request{events.APIGatewayWebsocketProxyRequest{
		RequestContext: events.APIGatewayWebsocketProxyRequestContext{
			Stage:             Stage,
			RequestID:         RequestID(name),
			ExtendedRequestID: RequestID(name),
			APIID:             APIID,
			ConnectedAt:       ConnectedAt,
			ConnectionID:      ConnectionID,
			DomainName:        DomainName,
			EventType:         eventType,
			MessageDirection:  "IN",
			RequestTime:       RequestTime,
			RequestTimeEpoch:  RequestTimeEpoch,
			RouteKey:          routeKey,
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  headers.ForwardedFor,
				UserAgent: headers.UserAgent,
			},
		},
	}}
}

// newLifecycle builds a $connect or $disconnect event, which carry the
// upgrade request's headers and no body.
func newLifecycle(name, routeKey, eventType string, overrides map[string]string) *Request {
	r := newRequest(name, routeKey, eventType)
	h := headers.Build(headers.Options{
		Overrides: overrides,
		Naming:    headers.Capitalized,
	})
	r.Headers = h.Headers
	r.MultiValueHeaders = h.MultiValueHeaders
	return r
}

func newMessage(name, routeKey, body string) *Request {
	r := newRequest(name, routeKey, EventTypeMessage)
	r.RequestContext.MessageID = "ZaB1cMessageId="
	r.Body = body
	return r
}

var ws = gateway.Table[*Request]{

	"connect": func() *Request {
		r := newLifecycle("connect", "$connect", EventTypeConnect, map[string]string{
			"Host":                     DomainName,
			"Sec-WebSocket-Extensions": "permessage-deflate; client_max_window_bits",
			"Sec-WebSocket-Key":        "dGhlIHNhbXBsZSBub25jZQ==",
			"Sec-WebSocket-Version":    "13",
		})
		r.QueryStringParameters = map[string]string{"token": "abc123"}
		r.MultiValueQueryStringParameters = map[string][]string{"token": {"abc123"}}
		return r
	},

	"disconnect": func() *Request {
		return newLifecycle("disconnect", "$disconnect", EventTypeDisconnect, map[string]string{
			"Host": DomainName,
		})
	},

	// Any message without a matching route.
	"default": func() *Request {
		return newMessage("default", "$default", `{"message":"hi"}`)
	},

	// A message selected by $request.body.action.
	"message": func() *Request {
		return newMessage("message", "hello", `{"action":"hello","message":"hi"}`)
	},

	// Binary frames arrive base64-encoded.
	"binaryMessage": func() *Request {
		r := newMessage("binaryMessage", "$default", lambdautil.Base64("hi there\n"))
		r.IsBase64Encoded = true
		return r
	},
}

func Get(name string) (*Request, error) { return ws.Get(name) }

func Names() []string { return ws.Names() }

// Table builds every WebSocket fixture.
func Table() map[string]*Request { return ws.Build() }
