package httpreq

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/headers"
	"github.com/src-bin/gatewayfixtures/lambdautil"
	"github.com/tidwall/gjson"
)

func TestNames(t *testing.T) {
	expectedV1 := []string{
		"deleteJson",
		"getCatchall",
		"getIndex",
		"getProxyPlus",
		"getWithParam",
		"getWithParamAndCatchall",
		"getWithQueryString",
		"getWithQueryStringDuplicateKey",
		"patchJson",
		"postFormURL",
		"postJson",
		"postMultiPartFormData",
		"postOctetStream",
		"putJson",
	}
	if diff := cmp.Diff(expectedV1, NamesV1()); diff != "" {
		t.Error(diff)
	}
	expectedV2 := []string{
		"deleteJson",
		"get$default",
		"getCatchall",
		"getIndex",
		"getProxyPlus",
		"getWithBrotli",
		"getWithGzip",
		"getWithParam",
		"getWithParamAndCatchall",
		"getWithQueryString",
		"getWithQueryStringDuplicateKey",
		"patchJson",
		"postFormURL",
		"postJson",
		"postMultiPartFormData",
		"postOctetStream",
		"putJson",
	}
	if diff := cmp.Diff(expectedV2, NamesV2()); diff != "" {
		t.Error(diff)
	}
}

func TestGetNotFound(t *testing.T) {
	var nfErr gateway.NotFoundError
	if _, err := GetV2("getNothing"); !errors.As(err, &nfErr) {
		t.Error(err)
	}
	if r, err := Get(gateway.V1, "getNothing"); r != nil || !errors.As(err, &nfErr) {
		t.Error(r, err)
	}
	var genErr gateway.GenerationError
	if _, err := Get(gateway.Legacy, "getIndex"); !errors.As(err, &genErr) {
		t.Error(err)
	}
}

// TestParity checks that every scenario present in both tables describes the
// same logical request.
func TestParity(t *testing.T) {
	for _, name := range NamesV1() {
		t.Run(name, func(t *testing.T) {
			r1, err := Get(gateway.V1, name)
			if err != nil {
				t.Fatal(err)
			}
			r2, err := Get(gateway.V2, name)
			if err != nil {
				t.Fatal(err)
			}
			if r1.RequestMethod() != r2.RequestMethod() {
				t.Error(r1.RequestMethod(), r2.RequestMethod())
			}
			if r1.RequestPath() != r2.RequestPath() {
				t.Error(r1.RequestPath(), r2.RequestPath())
			}
			body1, err := r1.DecodedBody()
			if err != nil {
				t.Fatal(err)
			}
			body2, err := r2.DecodedBody()
			if err != nil {
				t.Fatal(err)
			}
			if body1 != body2 {
				t.Errorf("%q != %q", body1, body2)
			}
		})
	}
}

func TestDuplicateQueryStringKey(t *testing.T) {
	r2, _ := GetV2("getWithQueryStringDuplicateKey")
	if r2.RawQueryString != "whats=up&whats=there" {
		t.Error(r2.RawQueryString)
	}
	if diff := cmp.Diff(map[string]string{"whats": "up,there"}, r2.QueryStringParameters); diff != "" {
		t.Error(diff)
	}
	r1, _ := GetV1("getWithQueryStringDuplicateKey")
	if diff := cmp.Diff(map[string][]string{"whats": {"up", "there"}}, r1.MultiValueQueryStringParameters); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(map[string]string{"whats": "there"}, r1.QueryStringParameters); diff != "" {
		t.Error(diff)
	}
}

func TestDecodedBodies(t *testing.T) {
	for name, expected := range map[string]string{
		"getIndex":              "",
		"postJson":              `{"hi":"there"}`,
		"postFormURL":           "hi=there",
		"postMultiPartFormData": "hi there",
		"postOctetStream":       "hi there\n",
		"putJson":               `{"hi":"there"}`,
		"patchJson":             `{"hi":"there"}`,
		"deleteJson":            `{"hi":"there"}`,
	} {
		for _, g := range []gateway.Generation{gateway.V1, gateway.V2} {
			r, err := Get(g, name)
			if err != nil {
				t.Fatal(err)
			}
			if body, err := r.DecodedBody(); err != nil || body != expected {
				t.Errorf("%s %s: %q != %q (%v)", g, name, body, expected, err)
			}
		}
	}
}

func TestV2Encodings(t *testing.T) {
	r, _ := GetV2("postJson")
	if r.IsBase64Encoded || r.Body != `{"hi":"there"}` {
		t.Error(r.Body, r.IsBase64Encoded)
	}
	r, _ = GetV2("postFormURL")
	if !r.IsBase64Encoded || r.Body != "aGk9dGhlcmU=" {
		t.Error(r.Body, r.IsBase64Encoded)
	}
	for name, contentType := range map[string]string{
		"postJson":              "application/json",
		"postFormURL":           "application/x-www-form-urlencoded",
		"postMultiPartFormData": "multipart/form-data",
		"postOctetStream":       "application/octet-stream",
	} {
		r2, _ := GetV2(name)
		r1, _ := GetV1(name)
		if r2.Headers["content-type"] != contentType || r1.Headers["content-type"] != contentType {
			t.Error(name, r2.Headers, r1.Headers)
		}
		if vs := r1.MultiValueHeaders["content-type"]; len(vs) != 1 || vs[0] != contentType {
			t.Error(name, r1.MultiValueHeaders)
		}
	}
}

func TestV2AcceptEncoding(t *testing.T) {
	for name, acceptEncoding := range map[string]string{
		"getIndex":      "deflate",
		"getWithBrotli": "gzip, br, deflate",
		"getWithGzip":   "gzip, deflate",
	} {
		r, _ := GetV2(name)
		if r.Headers["accept-encoding"] != acceptEncoding {
			t.Error(name, r.Headers)
		}
	}
}

func TestPathParameters(t *testing.T) {
	for name, expected := range map[string]map[string]string{
		"getIndex":                nil,
		"getProxyPlus":            {"proxy": "nature/hiking"},
		"getCatchall":             {"proxy": "hi/there"},
		"getWithParamAndCatchall": {"activities": "nature", "proxy": "hiking/wilderness"},
	} {
		r1, _ := GetV1(name)
		r2, _ := GetV2(name)
		if diff := cmp.Diff(expected, r1.PathParameters); diff != "" {
			t.Error(name, diff)
		}
		if diff := cmp.Diff(expected, r2.PathParameters); diff != "" {
			t.Error(name, diff)
		}
	}
	r1, _ := GetV1("getWithParam")
	if r1.PathParameters["activities"] != "hiking" || r1.Resource != "/nature/{activities}" {
		t.Error(r1.PathParameters, r1.Resource)
	}
	r2, _ := GetV2("getWithParam")
	if r2.PathParameters["nature"] != "hiking" || r2.RouteKey != "GET /nature/{activities}" {
		t.Error(r2.PathParameters, r2.RouteKey)
	}
	r2, _ = GetV2("get$default")
	if r2.RouteKey != "$default" || r2.RequestContext.RouteKey != "$default" || r2.RawPath != "/nature/hiking" {
		t.Error(r2.RouteKey, r2.RawPath)
	}
}

func TestCookies(t *testing.T) {
	for _, name := range NamesV2() {
		r, _ := GetV2(name)
		if c := lambdautil.Cookie2(r.Cookies, "_idx"); c == nil || c.Value != "abc123DEF456" {
			t.Error(name, r.Cookies)
		}
	}
	for _, name := range NamesV1() {
		r, _ := GetV1(name)
		if c := lambdautil.Cookie(r.MultiValueHeaders, "_idx"); c == nil || c.Value != "abc123DEF456" {
			t.Error(name, r.MultiValueHeaders)
		}
	}
}

func TestShapes(t *testing.T) {
	r2, _ := GetV2("getWithParam")
	b2, err := json.Marshal(r2)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct{ path, expected string }{
		{"version", "2.0"},
		{"routeKey", "GET /nature/{activities}"},
		{"rawPath", "/nature/hiking"},
		{"cookies.0", headers.Cookie},
		{"requestContext.http.method", "GET"},
		{"requestContext.http.sourceIp", SourceIP},
		{"requestContext.http.userAgent", UserAgent},
		{"requestContext.http.protocol", Protocol},
		{"headers.user-agent", UserAgent},
		{"pathParameters.nature", "hiking"},
		{"requestContext.routeKey", "GET /nature/{activities}"},
		{"headers.x-forwarded-port", "3333"},
		{"headers.accept-encoding", "deflate"},
		{"requestContext.http.path", "/nature/hiking"},
		{"headers.x-forwarded-proto", "http"},
		{"headers.x-forwarded-for", "127.0.0.1"},
		{"headers.cookie", "_idx=abc123DEF456"},
	} {
		if actual := gjson.GetBytes(b2, c.path).String(); actual != c.expected {
			t.Error(c.path, actual, c.expected)
		}
	}
	for _, path := range []string{"resource", "multiValueHeaders", "httpMethod"} {
		if gjson.GetBytes(b2, path).Exists() {
			t.Error(path, string(b2))
		}
	}

	r1, _ := GetV1("getWithParam")
	b1, err := json.Marshal(r1)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct{ path, expected string }{
		{"resource", "/nature/{activities}"},
		{"path", "/nature/hiking"},
		{"httpMethod", "GET"},
		{"headers.User-Agent", UserAgent},
		{"multiValueHeaders.User-Agent.0", UserAgent},
		{"requestContext.resourcePath", "/nature/{activities}"},
		{"requestContext.identity.sourceIp", SourceIP},
		{"requestContext.identity.userAgent", UserAgent},
	} {
		if actual := gjson.GetBytes(b1, c.path).String(); actual != c.expected {
			t.Error(c.path, actual, c.expected)
		}
	}
	if v := gjson.GetBytes(b1, "multiValueQueryStringParameters"); v.Type != gjson.Null {
		t.Error(v)
	}
	for _, path := range []string{"routeKey", "rawPath", "cookies"} {
		if gjson.GetBytes(b1, path).Exists() {
			t.Error(path, string(b1))
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for name, r := range TableV2() {
		b, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		var decoded V2
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(r, &decoded); diff != "" {
			t.Error(name, diff)
		}
	}
	for name, r := range TableV1() {
		b, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		var decoded V1
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(r, &decoded); diff != "" {
			t.Error(name, diff)
		}
	}
}

func TestFixturesDoNotAlias(t *testing.T) {
	a, _ := GetV2("postJson")
	a.Headers["content-type"] = "text/plain"
	a.Cookies[0] = "mutated"
	b, _ := GetV2("putJson")
	if b.Headers["content-type"] != "application/json" || b.Cookies[0] != headers.Cookie {
		t.Error(b.Headers, b.Cookies)
	}
	c, _ := GetV1("getIndex")
	c.MultiValueHeaders["cookie"][0] = "mutated"
	d, _ := GetV1("getIndex")
	if d.MultiValueHeaders["cookie"][0] != headers.Cookie {
		t.Error(d.MultiValueHeaders)
	}
}

func TestEncoding(t *testing.T) {
	for _, c := range []struct {
		g        gateway.Generation
		name     string
		expected string
	}{
		{gateway.V2, "getIndex", `{
			"version": "2.0",
			"routeKey": "GET /",
			"rawPath": "/",
			"rawQueryString": "",
			"cookies": ["_idx=abc123DEF456"],
			"headers": {
				"accept-encoding": "deflate",
				"cookie": "_idx=abc123DEF456",
				"user-agent": "Some Client 1.0",
				"x-forwarded-for": "127.0.0.1",
				"x-forwarded-port": "3333",
				"x-forwarded-proto": "http"
			},
			"requestContext": {
				"http": {
					"method": "GET",
					"path": "/",
					"protocol": "HTTP/1.1",
					"sourceIp": "127.0.0.1",
					"userAgent": "Some Client 1.0"
				},
				"routeKey": "GET /"
			},
			"isBase64Encoded": false
		}`},
		{gateway.V2, "postFormURL", `{
			"version": "2.0",
			"routeKey": "POST /form",
			"rawPath": "/form",
			"rawQueryString": "",
			"cookies": ["_idx=abc123DEF456"],
			"headers": {
				"accept-encoding": "deflate",
				"content-type": "application/x-www-form-urlencoded",
				"cookie": "_idx=abc123DEF456",
				"user-agent": "Some Client 1.0",
				"x-forwarded-for": "127.0.0.1",
				"x-forwarded-port": "3333",
				"x-forwarded-proto": "http"
			},
			"requestContext": {
				"http": {
					"method": "POST",
					"path": "/form",
					"protocol": "HTTP/1.1",
					"sourceIp": "127.0.0.1",
					"userAgent": "Some Client 1.0"
				},
				"routeKey": "POST /form"
			},
			"body": "aGk9dGhlcmU=",
			"isBase64Encoded": true
		}`},
		{gateway.V1, "getIndex", `{
			"resource": "/",
			"path": "/",
			"httpMethod": "GET",
			"headers": {
				"accept-encoding": "deflate",
				"cookie": "_idx=abc123DEF456",
				"User-Agent": "Some Client 1.0",
				"X-Forwarded-For": "127.0.0.1",
				"X-Forwarded-Port": "3333",
				"X-Forwarded-Proto": "http"
			},
			"multiValueHeaders": {
				"accept-encoding": ["deflate"],
				"cookie": ["_idx=abc123DEF456"],
				"User-Agent": ["Some Client 1.0"],
				"X-Forwarded-For": ["127.0.0.1"],
				"X-Forwarded-Port": ["3333"],
				"X-Forwarded-Proto": ["http"]
			},
			"queryStringParameters": null,
			"multiValueQueryStringParameters": null,
			"pathParameters": null,
			"body": null,
			"isBase64Encoded": false,
			"requestContext": {
				"httpMethod": "GET",
				"path": "/",
				"resourcePath": "/",
				"protocol": "HTTP/1.1",
				"identity": {
					"sourceIp": "127.0.0.1",
					"userAgent": "Some Client 1.0"
				}
			}
		}`},
		{gateway.V1, "postJson", `{
			"resource": "/form",
			"path": "/form",
			"httpMethod": "POST",
			"headers": {
				"accept-encoding": "deflate",
				"content-type": "application/json",
				"cookie": "_idx=abc123DEF456",
				"User-Agent": "Some Client 1.0",
				"X-Forwarded-For": "127.0.0.1",
				"X-Forwarded-Port": "3333",
				"X-Forwarded-Proto": "http"
			},
			"multiValueHeaders": {
				"accept-encoding": ["deflate"],
				"content-type": ["application/json"],
				"cookie": ["_idx=abc123DEF456"],
				"User-Agent": ["Some Client 1.0"],
				"X-Forwarded-For": ["127.0.0.1"],
				"X-Forwarded-Port": ["3333"],
				"X-Forwarded-Proto": ["http"]
			},
			"queryStringParameters": null,
			"multiValueQueryStringParameters": null,
			"pathParameters": null,
			"body": "eyJoaSI6InRoZXJlIn0=",
			"isBase64Encoded": true,
			"requestContext": {
				"httpMethod": "POST",
				"path": "/form",
				"resourcePath": "/form",
				"protocol": "HTTP/1.1",
				"identity": {
					"sourceIp": "127.0.0.1",
					"userAgent": "Some Client 1.0"
				}
			}
		}`},
	} {
		r, err := Get(c.g, c.name)
		if err != nil {
			t.Fatal(err)
		}
		b, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		var actual, expected interface{}
		if err := json.Unmarshal(b, &actual); err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal([]byte(c.expected), &expected); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Error(c.g, c.name, diff)
		}
	}
}

func TestEncodingFieldSets(t *testing.T) {
	for name, r := range TableV1() {
		b, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		if v := gjson.GetBytes(b, "isBase64Encoded"); v.Type != gjson.False && v.Type != gjson.True {
			t.Error(name, string(b))
		}
		if v := gjson.GetBytes(b, "body"); (v.Type == gjson.Null) != (r.Body == "") {
			t.Error(name, v.Raw)
		}
		for _, path := range []string{"stageVariables", "requestContext.authorizer", "requestContext.accountId", "requestContext.requestId"} {
			if gjson.GetBytes(b, path).Exists() {
				t.Error(name, path)
			}
		}
	}
	for name, r := range TableV2() {
		b, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		if !gjson.GetBytes(b, "isBase64Encoded").Exists() {
			t.Error(name, string(b))
		}
		var keys []string
		gjson.GetBytes(b, "requestContext").ForEach(func(k, _ gjson.Result) bool {
			keys = append(keys, k.String())
			return true
		})
		if diff := cmp.Diff([]string{"http", "routeKey"}, keys); diff != "" {
			t.Error(name, diff)
		}
		for _, path := range []string{"requestContext.authentication", "requestContext.accountId", "requestContext.timeEpoch", "stageVariables"} {
			if gjson.GetBytes(b, path).Exists() {
				t.Error(name, path)
			}
		}
	}
}
