package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/src-bin/gatewayfixtures/cmd/gateway-fixtures/api"
	"github.com/src-bin/gatewayfixtures/cmd/gateway-fixtures/dump"
	"github.com/src-bin/gatewayfixtures/cmd/gateway-fixtures/list"
	schemacmd "github.com/src-bin/gatewayfixtures/cmd/gateway-fixtures/schema"
	"github.com/src-bin/gatewayfixtures/cmd/gateway-fixtures/show"
	"github.com/src-bin/gatewayfixtures/cmd/gateway-fixtures/validate"
	"github.com/src-bin/gatewayfixtures/cmdutil"
	"github.com/src-bin/gatewayfixtures/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "gateway-fixtures api|dump|list|schema|show|validate",
		Short: "mock API Gateway request and response payloads",
		Long: `gateway-fixtures exports mock API Gateway HTTP and WebSocket payloads, in the
legacy, REST API (v1), HTTP API (v2), and WebSocket shapes, for use as test
fixtures by handlers and frameworks that must cope with all of them.

Fixtures are addressed by paths like http.req.v2.getIndex, http.res.v1.body,
http.legacy.req.post, and ws.req.connect.`,
		Version:      version.String(),
		SilenceUsage: true,
	}
	cmd.PersistentFlags().AddFlag(cmdutil.QuietFlag())

	cmd.AddCommand(api.Command())
	cmd.AddCommand(dump.Command())
	cmd.AddCommand(list.Command())
	cmd.AddCommand(schemacmd.Command())
	cmd.AddCommand(show.Command())
	cmd.AddCommand(validate.Command())

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
