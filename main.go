package main

import (
	"fmt"
	"os"

	"github.com/sheikhrachel/go-gol-variants/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
