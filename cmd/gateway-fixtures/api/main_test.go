package api

import (
	"bytes"
	"context"
	"testing"

	"github.com/src-bin/gatewayfixtures/catalog"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/wsreq"
	"github.com/tidwall/gjson"
)

func TestMainWebSocket(t *testing.T) {
	buf := &bytes.Buffer{}
	Main(context.Background(), catalog.Load(), nil, []string{"ws"}, buf)
	for _, c := range []struct{ path, expected string }{
		{"API.ApiId", wsreq.APIID},
		{"API.ProtocolType", "WEBSOCKET"},
		{"Integration.PayloadFormatVersion", "1.0"},
		{"Routes.#", "4"},
		{"Routes.0.RouteKey", "$connect"},
	} {
		if actual := gjson.GetBytes(buf.Bytes(), c.path).String(); actual != c.expected {
			t.Error(c.path, actual, c.expected)
		}
	}
}

func TestDescribe(t *testing.T) {
	if _, err := Describe(gateway.V1); err == nil {
		t.Error("REST APIs aren't API Gateway v2 resources")
	}
	d, err := Describe(gateway.V2)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Routes) == 0 {
		t.Error(d)
	}
}
