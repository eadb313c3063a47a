package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/ui"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text" // undocumented default for some tools
	FormatYAML Format = "yaml"
)

// FormatFlag returns the parsed format, the --format flag to add to a
// command's flag set, and its completion function.
func FormatFlag(defaultFormat Format, validFormats []Format) (
	*Format,
	*pflag.Flag,
	func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective),
) {
	f := &formatFlag{defaultFormat, validFormats}
	return &f.format, &pflag.Flag{
		Name:     "format",
		Usage:    f.Usage(),
		Value:    f,
		DefValue: string(defaultFormat),
	}, f.CompletionFunc
}

type FormatFlagError string

func (err FormatFlagError) Error() string {
	return fmt.Sprintf("--format %q not supported", string(err))
}

// GenerationFlag is a --generation flag restricted to the given gateway
// generations. Unset, it means all of them.
func GenerationFlag(validGenerations []gateway.Generation) (*[]gateway.Generation, *pflag.Flag) {
	f := &generationFlag{validGenerations: validGenerations}
	return &f.generations, &pflag.Flag{
		Name:  "generation",
		Usage: f.Usage(),
		Value: f,
	}
}

func NoCompletionFunc(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func QuietFlag() *pflag.Flag {
	return &pflag.Flag{
		Name:        "quiet",
		Shorthand:   "q",
		Usage:       "suppress status and diagnostic output",
		Value:       &quietFlag{},
		DefValue:    "false",
		NoOptDefVal: "true",
	}
}

type formatFlag struct {
	format       Format
	validFormats []Format
}

func (f *formatFlag) CompletionFunc(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	ss := make([]string, len(f.validFormats))
	for i, v := range f.validFormats {
		ss[i] = string(v)
	}
	return ss, cobra.ShellCompDirectiveNoFileComp
}

func (f *formatFlag) Set(format string) error {
	for _, v := range f.validFormats {
		if Format(format) == v {
			f.format = v
			return nil
		}
	}
	return FormatFlagError(format)
}

func (f *formatFlag) String() string {
	return string(f.format)
}

func (*formatFlag) Type() string {
	return "<format>"
}

func (f *formatFlag) Usage() string {
	var ss []string
	for _, v := range f.validFormats {
		switch v {
		case FormatJSON:
			ss = append(ss, "json")
		case FormatText:
			ss = append(ss, "text (for human-readable plaintext)")
		case FormatYAML:
			ss = append(ss, "yaml")
		}
	}
	return fmt.Sprint("output format - ", strings.Join(ss, ", "))
}

type generationFlag struct {
	generations      []gateway.Generation
	validGenerations []gateway.Generation
}

// Set accepts a generation name and may be given more than once.
func (f *generationFlag) Set(s string) error {
	g, err := gateway.ParseGeneration(s)
	if err != nil {
		return err
	}
	for _, v := range f.validGenerations {
		if g == v {
			f.generations = append(f.generations, g)
			return nil
		}
	}
	return gateway.GenerationError(s)
}

func (f *generationFlag) String() string {
	ss := make([]string, len(f.generations))
	for i, g := range f.generations {
		ss[i] = g.String()
	}
	return strings.Join(ss, ",")
}

func (*generationFlag) Type() string {
	return "<generation>"
}

func (f *generationFlag) Usage() string {
	ss := make([]string, len(f.validGenerations))
	for i, g := range f.validGenerations {
		ss[i] = g.String()
	}
	return fmt.Sprint("gateway generation to include, given any number of times (default all) - ", strings.Join(ss, ", "))
}

type quietFlag struct {
	quiet bool
}

func (q *quietFlag) Set(s string) error {
	old := q.quiet
	if q.quiet = s == "true"; q.quiet {
		ui.Quiet()
	} else if old {
		return fmt.Errorf("can't turn off quiet mode")
	}
	return nil
}

func (q *quietFlag) String() string {
	if q.quiet {
		return "true"
	}
	return "false"
}

func (*quietFlag) Type() string {
	return "bool"
}
