package dump

import (
	"bytes"
	"context"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/src-bin/gatewayfixtures/catalog"
	"github.com/src-bin/gatewayfixtures/cmdutil"
	"github.com/src-bin/gatewayfixtures/fileutil"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/ui"
)

var (
	format, formatFlag, formatCompletionFunc = cmdutil.FormatFlag(
		cmdutil.FormatJSON,
		[]cmdutil.Format{cmdutil.FormatJSON, cmdutil.FormatYAML},
	)
	generations, generationFlag = cmdutil.GenerationFlag(gateway.Generations())
	dirname                     = new(string)
	noClobber                   = new(bool)
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump --dir <dir> [--format <format>] [--generation <generation> ...] [--no-clobber] [<prefix>]",
		Short: "write every fixture to its own file",
		Long: `write every fixture, optionally only those beneath a prefix, to its own file
named for its path, e.g. <dir>/http.req.v2.getIndex.json`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
		ValidArgsFunction:     cmdutil.PathCompletionFunc,
	}
	cmd.Flags().StringVar(dirname, "dir", "", "directory in which to write fixtures, which will be created if necessary")
	cmd.MarkFlagRequired("dir")
	cmd.MarkFlagDirname("dir")
	cmd.Flags().AddFlag(formatFlag)
	cmd.RegisterFlagCompletionFunc(formatFlag.Name, formatCompletionFunc)
	cmd.Flags().AddFlag(generationFlag)
	cmd.RegisterFlagCompletionFunc(generationFlag.Name, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"legacy", "v1", "v2", "ws"}, cobra.ShellCompDirectiveNoFileComp
	})
	cmd.Flags().BoolVar(noClobber, "no-clobber", false, "leave existing files alone")
	return cmd
}

func Main(_ context.Context, cat *catalog.Catalog, _ *cobra.Command, args []string, _ io.Writer) {
	if *dirname == "" {
		ui.Fatal(`--dir "..." is required`)
	}
	if fileutil.Exists(*dirname) && !fileutil.IsDir(*dirname) {
		ui.Fatalf("%s exists and is not a directory", *dirname)
	}
	var prefix string
	if len(args) > 0 {
		prefix = args[0]
	}

	var paths []string
	for _, path := range cat.Names(prefix) {
		if included(ui.Must2(cat.Generation(path))) {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		ui.Fatalf("no fixtures beneath %q", prefix)
	}

	ui.Spinf("writing %d fixtures to %s", len(paths), *dirname)
	var skipped int
	for _, path := range paths {
		v, err := cat.Lookup(path)
		ui.Must(err)
		b, err := cmdutil.Serialize(v, *format, true)
		ui.Must(err)
		if !bytes.HasSuffix(b, []byte("\n")) {
			b = append(b, '\n')
		}
		pathname := filepath.Join(*dirname, path+format.Extension())
		if *noClobber {
			ok, err := fileutil.WriteFileIfNotExists(pathname, b)
			ui.Must(err)
			if !ok {
				skipped++
			}
		} else {
			ui.Must(fileutil.WriteFile(pathname, b))
		}
	}
	if skipped > 0 {
		ui.Stopf("ok (%d already existed)", skipped)
	} else {
		ui.Stop("ok")
	}
}

func included(g gateway.Generation) bool {
	if len(*generations) == 0 {
		return true
	}
	for _, want := range *generations {
		if g == want {
			return true
		}
	}
	return false
}
