package httpres

import (
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/lambdautil"
)

func v1Response(p *V1Payload) gateway.Response {
	return gateway.Response{Generation: gateway.V1, Value: p}
}

var v1 = gateway.Table[gateway.Response]{

	// Implicit JSON return.
	"body": func() gateway.Response {
		return v1Response(&V1Payload{Body: Text})
	},

	"isBase64Encoded": func() gateway.Response {
		return v1Response(&V1Payload{
			Body:            lambdautil.Base64(Binary),
			IsBase64Encoded: true,
		})
	},

	// A raw buffer: an error for strict consumers, base64 fodder for lenient
	// ones.
	"buffer": func() gateway.Response {
		return v1Response(&V1Payload{Body: []byte(Binary)})
	},

	// Base64 with a binary content type but no isBase64Encoded flag.
	"encodedWithBinaryTypeBad": func() gateway.Response {
		return v1Response(&V1Payload{
			Body:    lambdautil.Base64(Binary),
			Headers: map[string]string{"Content-Type": "application/pdf"},
		})
	},
	"encodedWithBinaryTypeGood": func() gateway.Response {
		return v1Response(&V1Payload{
			Body:            lambdautil.Base64(Binary),
			Headers:         map[string]string{"Content-Type": "application/pdf"},
			IsBase64Encoded: true,
		})
	},

	"secureCookieHeader": func() gateway.Response {
		return v1Response(&V1Payload{
			Body:    HTML,
			Headers: map[string]string{"set-cookie": "hi=there; Secure"},
		})
	},
	"secureCookieMultiValueHeader": func() gateway.Response {
		return v1Response(&V1Payload{
			Body: HTML,
			MultiValueHeaders: map[string]interface{}{
				"set-cookie": []string{"hi=there; Secure", "hi=there; Secure"},
			},
		})
	},

	// Headers and MultiValueHeaders disagree about Set-Cookie; consumers
	// must decide which wins.
	"multiValueHeaders": func() gateway.Response {
		return v1Response(&V1Payload{
			Headers: map[string]string{"Content-Type": "text/plain", "Set-Cookie": "Baz"},
			MultiValueHeaders: map[string]interface{}{
				"Content-Type": []string{"text/plain"},
				"Set-Cookie":   []string{"Foo", "Bar"},
			},
		})
	},

	"invalidMultiValueHeaders": func() gateway.Response {
		r := v1Response(&V1Payload{
			MultiValueHeaders: map[string]interface{}{
				"Content-Type": "text/plain",
				"Set-Cookie":   map[string]interface{}{"Foo": "Bar"},
			},
		})
		r.Malformed = true
		return r
	},
}
