// Package headers builds the recurring request header sets shared by the
// fixture tables. Every call allocates new maps so fixtures never alias one
// another's headers.
package headers

import "net/url"

// Naming selects how the client identity and forwarding headers are cased.
// HTTP APIs deliver them lowercase; REST APIs pass them through as the
// client sent them, which the fixtures model as capitalized.
type Naming int

const (
	Lowercase Naming = iota
	Capitalized
)

const (
	AcceptEncoding = "deflate"
	Cookie         = "_idx=abc123DEF456"
	ForwardedFor   = "127.0.0.1"
	ForwardedPort  = "3333"
	ForwardedProto = "http"
	UserAgent      = "Some Client 1.0"

	LegacyAcceptEncoding = "gzip"
)

type Options struct {
	Overrides map[string]string
	Naming    Naming
}

// Set is a built header set. MultiValueHeaders is only populated for the
// Capitalized naming convention, which is the one that carries them.
type Set struct {
	Headers           map[string]string
	MultiValueHeaders map[string][]string
}

// Build returns the baseline headers with opts.Overrides shallowly merged on
// top, overrides winning on collision.
func Build(opts Options) Set {
	agent, fwdFor, fwdPort, fwdProto := "user-agent", "x-forwarded-for", "x-forwarded-port", "x-forwarded-proto"
	if opts.Naming == Capitalized {
		agent, fwdFor, fwdPort, fwdProto = "User-Agent", "X-Forwarded-For", "X-Forwarded-Port", "X-Forwarded-Proto"
	}
	h := map[string]string{
		"accept-encoding": AcceptEncoding,
		"cookie":          Cookie,
		agent:             UserAgent,
		fwdFor:            ForwardedFor,
		fwdPort:           ForwardedPort,
		fwdProto:          ForwardedProto,
	}
	merge(h, opts.Overrides)
	set := Set{Headers: h}
	if opts.Naming == Capitalized {
		set.MultiValueHeaders = SingleToMultiValue(h)
	}
	return set
}

// Legacy returns the smaller baseline used by the pre-gateway request shape.
func Legacy(overrides map[string]string) map[string]string {
	h := map[string]string{
		"accept-encoding": LegacyAcceptEncoding,
		"cookie":          Cookie,
	}
	merge(h, overrides)
	return h
}

// SingleToMultiValue takes the API Gateway-provided map[string]string
// representations of headers, query string parameters, etc. and wraps each
// value in a one-element slice, which is how API Gateway presents the same
// data in its multiValue* fields.
func SingleToMultiValue(m map[string]string) url.Values {
	values := url.Values{}
	for k, v := range m {
		values[k] = []string{v}
	}
	return values
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
