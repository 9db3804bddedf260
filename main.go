// Bionic CLI - bionic reading conversion tool
package main

import (
	"os"

	"github.com/joeblew999/plat-bionic/internal/cli"
)

var version = "v0.1.0"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
