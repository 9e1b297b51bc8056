// Command fralgo is the Algo pseudocode interpreter: a file runner when
// given a path, an interactive shell otherwise (spec §6).
package main

import (
	"fmt"
	"os"

	"github.com/teegre/fralgo-go/cmd/fralgo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
