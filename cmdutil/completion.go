package cmdutil

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/src-bin/gatewayfixtures/catalog"
)

// PathCompletionFunc completes the first argument as a fixture path, one
// dotted segment at a time.
func PathCompletionFunc(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completePath(catalog.Load().Names(""), toComplete)
}

func completePath(paths []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	directive := cobra.ShellCompDirectiveNoFileComp
	set := make(map[string]bool)
	for _, path := range paths {
		if !strings.HasPrefix(path, toComplete) {
			continue
		}
		if i := strings.Index(path[len(toComplete):], "."); i >= 0 {
			set[path[:len(toComplete)+i+1]] = true
			directive |= cobra.ShellCompDirectiveNoSpace
		} else {
			set[path] = true
		}
	}
	ss := make([]string, 0, len(set))
	for s := range set {
		ss = append(ss, s)
	}
	sort.Strings(ss)
	return ss, directive
}
