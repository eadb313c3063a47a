package list

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/src-bin/gatewayfixtures/catalog"
	"github.com/src-bin/gatewayfixtures/cmdutil"
	"github.com/src-bin/gatewayfixtures/jsonutil"
	"github.com/src-bin/gatewayfixtures/ui"
)

var format, formatFlag, formatCompletionFunc = cmdutil.FormatFlag(
	cmdutil.FormatText,
	[]cmdutil.Format{cmdutil.FormatJSON, cmdutil.FormatText},
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [--format <format>] [<prefix>]",
		Short: "list the paths of every fixture, optionally only those beneath a prefix",
		Long: `list the paths of every fixture, optionally only those beneath a prefix
like http.req or ws.req`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
		ValidArgsFunction:     cmdutil.PathCompletionFunc,
	}
	cmd.Flags().AddFlag(formatFlag)
	cmd.RegisterFlagCompletionFunc(formatFlag.Name, formatCompletionFunc)
	return cmd
}

func Main(_ context.Context, cat *catalog.Catalog, _ *cobra.Command, args []string, w io.Writer) {
	var prefix string
	if len(args) > 0 {
		prefix = args[0]
	}
	names := cat.Names(prefix)
	if len(names) == 0 {
		ui.Fatalf("no fixtures beneath %q", prefix)
	}

	switch *format {
	case cmdutil.FormatJSON:
		jsonutil.PrettyPrint(w, names)
	case cmdutil.FormatText:
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
	default:
		ui.Fatal(cmdutil.FormatFlagError(*format))
	}
}
