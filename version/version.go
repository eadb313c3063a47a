package version

import "fmt"

// String is the version as cobra prints it for --version.
func String() string {
	return fmt.Sprintf("%s-%s", Version, Commit)
}

var (
	Commit  = "0000000" // replaced at build time with the short Git commit; see Makefile
	Version = "1970.01" // replaced at build time with current computed version; see Makefile
)
