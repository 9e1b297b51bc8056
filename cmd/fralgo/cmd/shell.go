package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teegre/fralgo-go/internal/interp"
	"github.com/teegre/fralgo-go/internal/shell"
)

func runShell(_ *cobra.Command) error {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	it := interp.New(interp.WithMainDir(dir))
	it.Trace = traceFlag
	it.SetWorkingDir(dir)

	sh := shell.New(it, os.Stdin, os.Stdout, os.Stderr)
	sh.Trace = traceFlag
	sh.Run()
	return nil
}
