package validate

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/src-bin/gatewayfixtures/catalog"
	"github.com/src-bin/gatewayfixtures/cmdutil"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/schema"
	"github.com/src-bin/gatewayfixtures/ui"
)

var generations, generationFlag = cmdutil.GenerationFlag([]gateway.Generation{gateway.Legacy, gateway.V1, gateway.V2})

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [--generation <generation> ...]",
		Short: "check every response fixture against its generation's JSON Schema",
		Long: `check every response fixture against its generation's JSON Schema and exit
non-zero if any well-formed fixture is rejected or any deliberately malformed
fixture is accepted`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{"--generation"}, cobra.ShellCompDirectiveNoFileComp
		},
	}
	cmd.Flags().AddFlag(generationFlag)
	cmd.RegisterFlagCompletionFunc(generationFlag.Name, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"legacy", "v1", "v2"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func Main(_ context.Context, cat *catalog.Catalog, _ *cobra.Command, _ []string, w io.Writer) {
	if n := Validate(cat, *generations, w); n > 0 {
		ui.Fatalf("%d response fixtures aren't what they claim to be", n)
	}
}

// Validate writes one line per response fixture in the given generations
// (all, if none are given) and returns the number of fixtures whose
// validity doesn't match their intent.
func Validate(cat *catalog.Catalog, generations []gateway.Generation, w io.Writer) (mismatches int) {
	responses := cat.Responses()
	for _, path := range cat.Names("") {
		r, ok := responses[path]
		if !ok || !included(r.Generation, generations) {
			continue
		}

		err := schema.Validate(r)
		malformed := r.Malformed
		var status string
		switch {
		case err == nil && !malformed:
			status = "ok"
		case err != nil && malformed:
			status = "rejected as expected"
		case err == nil && malformed:
			status = "ACCEPTED but malformed"
			mismatches++
		default:
			status = "REJECTED"
			mismatches++
		}
		if err != nil {
			fmt.Fprintf(w, "%s %s: %s\n", path, status, strings.TrimPrefix(err.Error(), "invalid "+r.Generation.String()+" response: "))
		} else {
			fmt.Fprintf(w, "%s %s\n", path, status)
		}
	}
	return
}

func included(g gateway.Generation, generations []gateway.Generation) bool {
	if len(generations) == 0 {
		return true
	}
	for _, want := range generations {
		if g == want {
			return true
		}
	}
	return false
}
