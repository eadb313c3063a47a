package legacy

import (
	"net/http"

	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/lambdautil"
)

const (
	html   = "<span>hi there</span>"
	binary = "hi there\n"
)

func response(p *Payload) gateway.Response {
	return gateway.Response{Generation: gateway.Legacy, Value: p}
}

var res = gateway.Table[gateway.Response]{

	// Not returning at all.
	"noReturn": func() gateway.Response {
		return gateway.Response{Generation: gateway.Legacy}
	},

	// body with no type defaults to JSON.
	"body": func() gateway.Response {
		return response(&Payload{Body: html})
	},

	"type": func() gateway.Response {
		return response(&Payload{Type: "text/html; charset=utf8", Body: html})
	},

	// Three spellings of the same thing.
	"status": func() gateway.Response {
		return response(&Payload{Status: http.StatusCreated, Body: html})
	},
	"code": func() gateway.Response {
		return response(&Payload{Code: http.StatusCreated, Body: html})
	},
	"statusCode": func() gateway.Response {
		return response(&Payload{StatusCode: http.StatusCreated, Body: html})
	},

	"cookie": func() gateway.Response {
		return response(&Payload{Cookie: "hi=there", Body: html})
	},
	"secureCookie": func() gateway.Response {
		return response(&Payload{Cookie: "hi=there; Secure", Body: html})
	},
	"secureCookieHeader": func() gateway.Response {
		return response(&Payload{
			Headers: map[string]string{"set-cookie": "hi=there; Secure"},
			Body:    html,
		})
	},

	"cors": func() gateway.Response {
		return response(&Payload{Cors: true, Body: html})
	},

	// A location alone means a 302.
	"location": func() gateway.Response {
		return response(&Payload{Location: "/nature/hiking"})
	},

	"isBase64Encoded": func() gateway.Response {
		return response(&Payload{
			Type:            "application/pdf",
			Body:            lambdautil.Base64(binary),
			IsBase64Encoded: true,
		})
	},
}
