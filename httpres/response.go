package httpres

import "github.com/src-bin/gatewayfixtures/gateway"

func Get(g gateway.Generation, name string) (gateway.Response, error) {
	switch g {
	case gateway.V2:
		return v2.Get(name)
	case gateway.V1:
		return v1.Get(name)
	}
	return gateway.Response{}, gateway.GenerationError(g.String())
}

func GetV1(name string) (gateway.Response, error) { return v1.Get(name) }

func GetV2(name string) (gateway.Response, error) { return v2.Get(name) }

func NamesV1() []string { return v1.Names() }

func NamesV2() []string { return v2.Names() }

// TableV1 builds every REST API response fixture.
func TableV1() map[string]gateway.Response { return v1.Build() }

// TableV2 builds every HTTP API response fixture.
func TableV2() map[string]gateway.Response { return v2.Build() }
