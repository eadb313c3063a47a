package awsapigatewayv2

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2/types"
	"github.com/src-bin/gatewayfixtures/gateway"
)

const FunctionARN = "arn:aws:lambda:" + Region + ":123456789012:function:gateway-fixtures"

// Integration is the Lambda proxy integration every route targets. Its
// payload format version is what distinguishes the shapes of v1 and v2
// events.
func Integration(g gateway.Generation) (*types.Integration, error) {
	api, err := API(g)
	if err != nil {
		return nil, err
	}
	return &types.Integration{
		IntegrationId:        aws.String(integrationID(api)),
		IntegrationMethod:    aws.String("POST"),
		IntegrationType:      types.IntegrationTypeAwsProxy,
		IntegrationUri:       aws.String(FunctionARN),
		PayloadFormatVersion: aws.String(g.PayloadFormatVersion()),
	}, nil
}

func integrationID(api *types.Api) string {
	return fmt.Sprintf("%.7s", aws.ToString(api.ApiId))
}
