package catalog

const (
	PrefixHTTPReqV2     = "http.req.v2"
	PrefixHTTPReqV1     = "http.req.v1"
	PrefixHTTPResV2     = "http.res.v2"
	PrefixHTTPResV1     = "http.res.v1"
	PrefixHTTPLegacyReq = "http.legacy.req"
	PrefixHTTPLegacyRes = "http.legacy.res"
	PrefixWSReq         = "ws.req"
)

// Prefixes lists every table's path in the order they're documented.
func Prefixes() []string {
	return []string{
		PrefixHTTPReqV2,
		PrefixHTTPReqV1,
		PrefixHTTPResV2,
		PrefixHTTPResV1,
		PrefixHTTPLegacyReq,
		PrefixHTTPLegacyRes,
		PrefixWSReq,
	}
}
