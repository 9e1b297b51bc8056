package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set by build flags, like the teacher's CLI.
var Version = "0.1.0-dev"

var (
	traceFlag   bool
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "fralgo [file]",
	Short: "Interpréteur du pseudocode Algo",
	Long: `fralgo exécute des programmes écrits en pseudocode Algo (français).

Donné un fichier .algo, il est lu, analysé puis évalué. Sans argument, il
lance un interpréteur interactif (::: prompt).`,
	Version:      Version,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "active le drapeau Trace de l'interpréteur (aucune trace n'est affichée)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "mode verbeux")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command. No-argument invocation (with no
// subcommand) launches the shell; a single positional argument runs that
// file, mirroring the teacher's root/run command split but collapsing it
// to match spec §6's two-entry-point design: `fralgo` alone is the shell,
// `fralgo <file>` runs it directly without a `run` subcommand.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(c *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runShell(c)
	}
	return runFile(args[0], args[1:])
}

// ExitError carries the process exit code a failed run should use, so
// main can distinguish spec §6's 1 (usage/file-not-found) from 666
// (unrecoverable interpreter error) instead of cobra's blanket 1.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string { return e.Msg }

// ExitCode returns the process exit code for err: the code carried by an
// *ExitError, or 1 for any other error (cobra usage errors included).
func ExitCode(err error) int {
	if e, ok := err.(*ExitError); ok {
		return e.Code
	}
	return 1
}

func fatalf(code int, format string, args ...any) error {
	return &ExitError{Code: code, Msg: fmt.Sprintf(format, args...)}
}
