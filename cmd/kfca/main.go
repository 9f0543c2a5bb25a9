// Package main provides the kfca CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/kfca/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
