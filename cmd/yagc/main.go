// Command yagc is a minimal local version-control tool.
package main

import (
	"os"

	"github.com/ryandancy/yagc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
