package show

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"github.com/src-bin/gatewayfixtures/catalog"
	"github.com/src-bin/gatewayfixtures/cmdutil"
	"github.com/src-bin/gatewayfixtures/jsonutil"
	"github.com/src-bin/gatewayfixtures/ui"
	"github.com/tidwall/gjson"
)

var (
	format, formatFlag, formatCompletionFunc = cmdutil.FormatFlag(
		cmdutil.FormatJSON,
		[]cmdutil.Format{cmdutil.FormatJSON, cmdutil.FormatYAML},
	)
	query  = new(string)
	indent = new(bool)

	isTerminal = cmdutil.IsTerminal
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [--format <format>] [--query <query>] [--indent] <path>",
		Short: "print one fixture",
		Long: `print one fixture, or with --query only the part of it selected by a GJSON
path like headers.cookie or requestContext.http.method

JSON is indented when standard output is a terminal or with --indent.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
		ValidArgsFunction:     cmdutil.PathCompletionFunc,
	}
	cmd.Flags().AddFlag(formatFlag)
	cmd.RegisterFlagCompletionFunc(formatFlag.Name, formatCompletionFunc)
	cmd.Flags().StringVar(query, "query", "", "GJSON path selecting part of the fixture to print")
	cmd.RegisterFlagCompletionFunc("query", cmdutil.NoCompletionFunc)
	cmd.Flags().BoolVar(indent, "indent", false, "indent JSON even when standard output is not a terminal")
	return cmd
}

func Main(_ context.Context, cat *catalog.Catalog, _ *cobra.Command, args []string, w io.Writer) {
	v, err := cat.Lookup(args[0])
	ui.Must(err)

	document := v
	if *query != "" {
		b, err := jsonutil.Marshal(v, false)
		ui.Must(err)
		result := gjson.GetBytes(b, *query)
		if !result.Exists() {
			ui.Fatalf("%s has nothing at %s", args[0], *query)
		}
		document = json.RawMessage(result.Raw)
	}

	b, err := cmdutil.Serialize(document, *format, *indent || isTerminal())
	ui.Must(err)
	if !bytes.HasSuffix(b, []byte("\n")) {
		b = append(b, '\n')
	}
	_, err = w.Write(b)
	ui.Must(err)
}
