package awsapigatewayv2

import (
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2/types"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/httpreq"
	"github.com/src-bin/gatewayfixtures/wsreq"
)

const Default = "$default"

// Routes returns, sorted by route key, one route for every distinct route key
// among the given generation's request fixtures.
func Routes(g gateway.Generation) ([]types.Route, error) {
	api, err := API(g)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]bool)
	switch g {
	case gateway.V2:
		for _, r := range httpreq.TableV2() {
			keys[r.RouteKey] = true
		}
	case gateway.WebSocket:
		for _, r := range wsreq.Table() {
			keys[r.RequestContext.RouteKey] = true
		}
	}
	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	routes := make([]types.Route, len(sorted))
	for i, key := range sorted {
		routes[i] = types.Route{
			AuthorizationType: types.AuthorizationTypeNone,
			RouteId:           aws.String(fmt.Sprintf("%.4s%03d", aws.ToString(api.ApiId), i)),
			RouteKey:          aws.String(key),
			Target:            aws.String("integrations/" + integrationID(api)),
		}
	}
	return routes, nil
}

func RouteByKey(routes []types.Route, key string) (*types.Route, error) {
	for _, route := range routes {
		if aws.ToString(route.RouteKey) == key {
			return &route, nil
		}
	}
	return nil, NotFound{key, "route"}
}
