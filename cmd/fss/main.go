// Command fss computes disk usage for the given paths, grouped by extension,
// file type, file name or parent directory.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/fss/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // Set by the linker
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fss: %v\n", err)
		os.Exit(1)
	}
}
