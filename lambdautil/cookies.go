package lambdautil

import (
	"net/http"
)

// The cookie helpers don't build fixtures. They're exported for consumers'
// tests to read cookies back out of request and response fixtures in any
// generation.

// Cookie finds the named cookie in REST API-style multi-value headers.
func Cookie(headers map[string][]string, name string) *http.Cookie {
	for _, cookie := range Cookies(headers) {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// Cookie2 finds the named cookie in an HTTP API-style cookies array.
func Cookie2(cookies []string, name string) *http.Cookie {
	for _, cookie := range Cookies2(cookies) {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// Cookies parses every cookie in REST API-style multi-value headers.
func Cookies(headers map[string][]string) []*http.Cookie {
	req := &http.Request{Header: http.Header{
		"Cookie": headers["cookie"], // beware the case-sensitivity
	}}
	return req.Cookies()
}

// Cookies2 parses every cookie in an HTTP API-style cookies array.
func Cookies2(cookies []string) []*http.Cookie {
	req := &http.Request{Header: http.Header{
		"Cookie": cookies,
	}}
	return req.Cookies()
}

// SetCookies parses Set-Cookie values as a client would, which is how the
// response fixtures' cookies are checked.
func SetCookies(values []string) []*http.Cookie {
	resp := &http.Response{Header: http.Header{
		"Set-Cookie": values,
	}}
	return resp.Cookies()
}
