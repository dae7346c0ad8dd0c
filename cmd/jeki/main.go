package main

import (
	"fmt"
	"os"

	"github.com/antekerwin/jeki/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jeki:", err)
		os.Exit(1)
	}
}
