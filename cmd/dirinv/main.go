// Command dirinv builds a hierarchical folder inventory for manual review.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirinv/internal/cli"
)

// Version is set via ldflags at build time.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
