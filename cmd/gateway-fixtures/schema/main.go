package schema

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/src-bin/gatewayfixtures/catalog"
	"github.com/src-bin/gatewayfixtures/cmdutil"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/schema"
	"github.com/src-bin/gatewayfixtures/ui"
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema legacy|v1|v2",
		Short: "print the JSON Schema of a generation's handler responses",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"legacy", "v1", "v2"},
	}
	return cmd
}

func Main(_ context.Context, _ *catalog.Catalog, _ *cobra.Command, args []string, w io.Writer) {
	g, err := gateway.ParseGeneration(args[0])
	ui.Must(err)
	b, err := schema.Source(g)
	ui.Must(err)
	_, err = w.Write(b)
	ui.Must(err)
}
