// Package catalog gathers every fixture table into one nested structure
// whose JSON form is the namespace consumers address fixtures by, e.g.
// http.req.v2.getIndex or ws.req.connect.
package catalog

import (
	"sort"
	"strings"

	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/httpreq"
	"github.com/src-bin/gatewayfixtures/httpres"
	"github.com/src-bin/gatewayfixtures/legacy"
	"github.com/src-bin/gatewayfixtures/wsreq"
)

type Catalog struct {
	HTTP HTTP `json:"http"`
	WS   WS   `json:"ws"`

	requests  map[string]gateway.Request
	responses map[string]gateway.Response
}

type HTTP struct {
	Req    Requests  `json:"req"`
	Res    Responses `json:"res"`
	Legacy Legacy    `json:"legacy"`
}

type Requests struct {
	V2 map[string]*httpreq.V2 `json:"v2"`
	V1 map[string]*httpreq.V1 `json:"v1"`
}

type Responses struct {
	V2 map[string]gateway.Response `json:"v2"`
	V1 map[string]gateway.Response `json:"v1"`
}

type Legacy struct {
	Req map[string]*legacy.Request  `json:"req"`
	Res map[string]gateway.Response `json:"res"`
}

type WS struct {
	Req map[string]*wsreq.Request `json:"req"`
}

// Load builds every fixture. Each call returns a Catalog that shares nothing
// with any other.
func Load() *Catalog {
	c := &Catalog{
		HTTP: HTTP{
			Req: Requests{
				V2: httpreq.TableV2(),
				V1: httpreq.TableV1(),
			},
			Res: Responses{
				V2: httpres.TableV2(),
				V1: httpres.TableV1(),
			},
			Legacy: Legacy{
				Req: legacy.Requests(),
				Res: legacy.Responses(),
			},
		},
		WS: WS{
			Req: wsreq.Table(),
		},
		requests:  make(map[string]gateway.Request),
		responses: make(map[string]gateway.Response),
	}

	for name, r := range c.HTTP.Req.V2 {
		c.requests[join(PrefixHTTPReqV2, name)] = r
	}
	for name, r := range c.HTTP.Req.V1 {
		c.requests[join(PrefixHTTPReqV1, name)] = r
	}
	for name, r := range c.HTTP.Legacy.Req {
		c.requests[join(PrefixHTTPLegacyReq, name)] = r
	}
	for name, r := range c.WS.Req {
		c.requests[join(PrefixWSReq, name)] = r
	}

	for name, r := range c.HTTP.Res.V2 {
		c.responses[join(PrefixHTTPResV2, name)] = r
	}
	for name, r := range c.HTTP.Res.V1 {
		c.responses[join(PrefixHTTPResV1, name)] = r
	}
	for name, r := range c.HTTP.Legacy.Res {
		c.responses[join(PrefixHTTPLegacyRes, name)] = r
	}

	return c
}

// Lookup resolves a dotted path to a fixture, which is either a
// gateway.Request or a gateway.Response.
func (c *Catalog) Lookup(path string) (interface{}, error) {
	if r, ok := c.requests[path]; ok {
		return r, nil
	}
	if r, ok := c.responses[path]; ok {
		return r, nil
	}
	return nil, gateway.NotFoundError(path)
}

// Names lists, sorted, the paths of every fixture at or beneath prefix.
// The empty prefix lists everything.
func (c *Catalog) Names(prefix string) []string {
	var ss []string
	for path := range c.requests {
		if under(path, prefix) {
			ss = append(ss, path)
		}
	}
	for path := range c.responses {
		if under(path, prefix) {
			ss = append(ss, path)
		}
	}
	sort.Strings(ss)
	return ss
}

// Requests returns every request fixture by path.
func (c *Catalog) Requests() map[string]gateway.Request {
	m := make(map[string]gateway.Request, len(c.requests))
	for path, r := range c.requests {
		m[path] = r
	}
	return m
}

// Responses returns every response fixture by path.
func (c *Catalog) Responses() map[string]gateway.Response {
	m := make(map[string]gateway.Response, len(c.responses))
	for path, r := range c.responses {
		m[path] = r
	}
	return m
}

func join(prefix, name string) string {
	return prefix + "." + name
}

func under(path, prefix string) bool {
	return prefix == "" || path == prefix || strings.HasPrefix(path, prefix+".")
}

// Generation returns the gateway generation of the fixture at path.
func (c *Catalog) Generation(path string) (gateway.Generation, error) {
	if r, ok := c.requests[path]; ok {
		return r.Generation(), nil
	}
	if r, ok := c.responses[path]; ok {
		return r.Generation, nil
	}
	return 0, gateway.NotFoundError(path)
}

// IsMalformed reports whether the fixture at path is a response that's
// malformed on purpose, for exercising a consumer's error handling.
func (c *Catalog) IsMalformed(path string) bool {
	r, ok := c.responses[path]
	return ok && r.Malformed
}
