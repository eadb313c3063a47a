package lambdautil

import (
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
)

// Base64 encodes s the way API Gateway encodes binary bodies.
func Base64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func DecodeBody(body string, isBase64Encoded bool) (string, error) {
	if isBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return body, nil
}

func EventBody(event *events.APIGatewayProxyRequest) (string, error) {
	return DecodeBody(event.Body, event.IsBase64Encoded)
}

func EventBody2(event *events.APIGatewayV2HTTPRequest) (string, error) {
	return DecodeBody(event.Body, event.IsBase64Encoded)
}

func EventBodyWebsocket(event *events.APIGatewayWebsocketProxyRequest) (string, error) {
	return DecodeBody(event.Body, event.IsBase64Encoded)
}
