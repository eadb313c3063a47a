package api

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2/types"
	"github.com/spf13/cobra"
	"github.com/src-bin/gatewayfixtures/awsapigatewayv2"
	"github.com/src-bin/gatewayfixtures/catalog"
	"github.com/src-bin/gatewayfixtures/cmdutil"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/ui"
)

var format, formatFlag, formatCompletionFunc = cmdutil.FormatFlag(
	cmdutil.FormatJSON,
	[]cmdutil.Format{cmdutil.FormatJSON, cmdutil.FormatYAML},
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api [--format <format>] v2|ws",
		Short: "describe the API Gateway v2 API, integration, and routes behind a generation's request fixtures",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"v2", "ws"},
	}
	cmd.Flags().AddFlag(formatFlag)
	cmd.RegisterFlagCompletionFunc(formatFlag.Name, formatCompletionFunc)
	return cmd
}

type Description struct {
	API         *types.Api
	Integration *types.Integration
	Routes      []types.Route
}

func Describe(g gateway.Generation) (*Description, error) {
	api, err := awsapigatewayv2.API(g)
	if err != nil {
		return nil, err
	}
	integration, err := awsapigatewayv2.Integration(g)
	if err != nil {
		return nil, err
	}
	routes, err := awsapigatewayv2.Routes(g)
	if err != nil {
		return nil, err
	}
	return &Description{api, integration, routes}, nil
}

func Main(_ context.Context, _ *catalog.Catalog, _ *cobra.Command, args []string, w io.Writer) {
	g, err := gateway.ParseGeneration(args[0])
	ui.Must(err)
	d, err := Describe(g)
	ui.Must(err)
	b, err := cmdutil.Serialize(d, *format, true)
	ui.Must(err)
	if !bytes.HasSuffix(b, []byte("\n")) {
		b = append(b, '\n')
	}
	_, err = w.Write(b)
	ui.Must(err)
}
