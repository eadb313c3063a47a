package httpres

import (
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/lambdautil"
)

const (
	HTML = "<span>hi there</span>"
	Text = "hi there"

	// Binary is the source of every base64-encoded and compressed body.
	Binary = "hi there\n"
)

func v2Response(value interface{}) gateway.Response {
	return gateway.Response{Generation: gateway.V2, Value: value}
}

var v2 = gateway.Table[gateway.Response]{

	// Not returning is valid and produces a JSON null body.
	"noReturn": func() gateway.Response { return v2Response(nil) },

	// ... while this produces a zero-length JSON body.
	"emptyReturn": func() gateway.Response { return v2Response("") },

	// JSON-serializable primitives are coerced into JSON bodies.
	"string": func() gateway.Response { return v2Response("hi") },
	"object": func() gateway.Response { return v2Response(map[string]interface{}{"ok": true}) },
	"array":  func() gateway.Response { return v2Response([]interface{}{"howdy"}) },
	"buffer": func() gateway.Response { return v2Response([]byte("hi")) },
	"number": func() gateway.Response { return v2Response(42) },

	// Without a status code, a body alone is just another object to coerce.
	"bodyOnly": func() gateway.Response {
		return v2Response(&V2Payload{Body: Text})
	},
	"bodyWithStatus": func() gateway.Response {
		return v2Response(&V2Payload{StatusCode: 200, Body: Text})
	},

	"bodyWithStatusAndContentType": func() gateway.Response {
		return v2Response(&V2Payload{
			StatusCode: 200,
			Headers:    map[string]string{"content-type": "application/json"},
			Body:       Text,
		})
	},

	"encodedWithBinaryType": func() gateway.Response {
		return v2Response(&V2Payload{
			StatusCode:      200,
			Body:            lambdautil.Base64(Binary),
			Headers:         map[string]string{"content-type": "application/pdf"},
			IsBase64Encoded: true,
		})
	},

	// Already compressed by the handler, raw bytes and all. These are exactly
	// what lambdautil.Brotli(Binary) produces.
	"encodedWithCompression": func() gateway.Response {
		return v2Response(&V2Payload{
			StatusCode: 200,
			Body:       []byte{0x0b, 0x04, 0x80, 0x68, 0x69, 0x20, 0x74, 0x68, 0x65, 0x72, 0x65, 0x0a, 0x03}, // brotli of Binary
			Headers: map[string]string{
				"content-type":     "application/pdf",
				"content-encoding": "br",
			},
		})
	},

	"cookies": func() gateway.Response {
		return v2Response(&V2Payload{
			StatusCode: 200,
			Cookies:    []string{"foo", "bar"},
			Body:       Text,
		})
	},
	"secureCookies": func() gateway.Response {
		return v2Response(&V2Payload{
			StatusCode: 200,
			Cookies:    []string{"hi=there; Secure", "hi=there; Secure"},
			Body:       Text,
		})
	},
	"secureCookieHeader": func() gateway.Response {
		return v2Response(&V2Payload{
			StatusCode: 200,
			Headers:    map[string]string{"set-cookie": "hi=there; Secure"},
			Body:       Text,
		})
	},

	// HTTP APIs forgive nearly anything so this has to be blatant.
	"invalid": func() gateway.Response {
		r := v2Response(&V2Payload{StatusCode: "idk"})
		r.Malformed = true
		return r
	},

	"preferBrCompression": func() gateway.Response {
		return v2Response(&V2Payload{StatusCode: 200, Body: Text, Compression: CompressionBrotli})
	},
	"preferGzipCompression": func() gateway.Response {
		return v2Response(&V2Payload{StatusCode: 200, Body: Text, Compression: CompressionGzip})
	},
	"disableCompression": func() gateway.Response {
		return v2Response(&V2Payload{StatusCode: 200, Body: Text, Compression: CompressionDisabled})
	},
}
