package gateway

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2/types"
)

// Generation identifies which integration produced (or consumes) a payload.
// Consumers should switch on it exhaustively rather than sniff field names.
type Generation int

const (
	Legacy    Generation = iota // pre-API Gateway proxy integration
	V1                          // REST API, payload format 1.0
	V2                          // HTTP API, payload format 2.0
	WebSocket                   // WebSocket API
)

func Generations() []Generation {
	return []Generation{Legacy, V1, V2, WebSocket}
}

func ParseGeneration(s string) (Generation, error) {
	for _, g := range Generations() {
		if g.String() == s {
			return g, nil
		}
	}
	return 0, GenerationError(s)
}

// PayloadFormatVersion returns the API Gateway payload format version that
// describes this generation's request shape, or the empty string for Legacy.
func (g Generation) PayloadFormatVersion() string {
	switch g {
	case V1, WebSocket:
		return "1.0"
	case V2:
		return "2.0"
	}
	return ""
}

// ProtocolType returns the API Gateway v2 protocol type of the API that emits
// this generation's events. REST APIs (and Legacy) aren't API Gateway v2
// resources so they return the empty ProtocolType.
func (g Generation) ProtocolType() types.ProtocolType {
	switch g {
	case V2:
		return types.ProtocolTypeHttp
	case WebSocket:
		return types.ProtocolTypeWebsocket
	}
	return ""
}

func (g Generation) String() string {
	switch g {
	case Legacy:
		return "legacy"
	case V1:
		return "v1"
	case V2:
		return "v2"
	case WebSocket:
		return "ws"
	}
	return fmt.Sprintf("Generation(%d)", int(g))
}

type GenerationError string

func (err GenerationError) Error() string {
	return fmt.Sprintf("unknown gateway generation %q", string(err))
}
