// Package awsapigatewayv2 describes, as API Gateway v2 resources, the mock
// HTTP and WebSocket APIs that would emit the request fixtures: the API
// itself, its one Lambda proxy integration, and a route for every route key
// the fixtures use.
package awsapigatewayv2

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2/types"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/wsreq"
)

const (
	HTTPAPIID = "fedcba4321"
	Region    = "us-west-2"

	HTTPRouteSelectionExpression      = "${request.method} ${request.path}"
	WebSocketRouteSelectionExpression = "$request.body.action"
)

// API is the mock API whose events make up the given generation's request
// fixtures. Only HTTP (v2) and WebSocket APIs are API Gateway v2 resources.
func API(g gateway.Generation) (*types.Api, error) {
	var id, expression string
	switch g {
	case gateway.V2:
		id, expression = HTTPAPIID, HTTPRouteSelectionExpression
	case gateway.WebSocket:
		id, expression = wsreq.APIID, WebSocketRouteSelectionExpression
	default:
		return nil, NotFound{g.String(), "API"}
	}
	scheme := "https"
	if g == gateway.WebSocket {
		scheme = "wss"
	}
	return &types.Api{
		ApiEndpoint:              aws.String(fmt.Sprintf("%s://%s.execute-api.%s.amazonaws.com", scheme, id, Region)),
		ApiId:                    aws.String(id),
		Name:                     aws.String(fmt.Sprintf("gateway-fixtures-%s", g)),
		ProtocolType:             g.ProtocolType(),
		RouteSelectionExpression: aws.String(expression),
	}, nil
}
