// SPDX-License-Identifier: MIT

// Package main provides the entry point for the gridpatrol CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/gridpatrol/internal/cli"
)

func main() {
	app := cli.New()

	if err := app.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
