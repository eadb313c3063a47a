// Package httpreq holds mock API Gateway HTTP request events in both proxy
// payload formats. The two tables share one scenario namespace so a
// consumer can run the same assertions against either shape.
package httpreq

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/lambdautil"
)

const (
	Protocol  = "HTTP/1.1"
	SourceIP  = "127.0.0.1"
	UserAgent = "Some Client 1.0"
)

// V2 is an HTTP API event in payload format 2.0.
type V2 struct {
	events.APIGatewayV2HTTPRequest
}

func (*V2) Generation() gateway.Generation { return gateway.V2 }

func (r *V2) RequestMethod() string { return r.RequestContext.HTTP.Method }

func (r *V2) RequestPath() string { return r.RawPath }

func (r *V2) DecodedBody() (string, error) {
	return lambdautil.EventBody2(&r.APIGatewayV2HTTPRequest)
}

// V1 is a REST API event in payload format 1.0.
type V1 struct {
	events.APIGatewayProxyRequest
}

func (*V1) Generation() gateway.Generation { return gateway.V1 }

func (r *V1) RequestMethod() string { return r.HTTPMethod }

func (r *V1) RequestPath() string { return r.Path }

func (r *V1) DecodedBody() (string, error) {
	return lambdautil.EventBody(&r.APIGatewayProxyRequest)
}

// Get returns a freshly built fixture of the given generation.
func Get(g gateway.Generation, name string) (gateway.Request, error) {
	switch g {
	case gateway.V2:
		r, err := GetV2(name)
		if err != nil {
			return nil, err
		}
		return r, nil
	case gateway.V1:
		r, err := GetV1(name)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, gateway.GenerationError(g.String())
}

func GetV1(name string) (*V1, error) { return v1.Get(name) }

func GetV2(name string) (*V2, error) { return v2.Get(name) }

func NamesV1() []string { return v1.Names() }

func NamesV2() []string { return v2.Names() }

// TableV1 builds every REST API fixture.
func TableV1() map[string]*V1 { return v1.Build() }

// TableV2 builds every HTTP API fixture.
func TableV2() map[string]*V2 { return v2.Build() }
