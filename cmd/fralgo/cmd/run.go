package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/interp"
	"github.com/teegre/fralgo-go/internal/parser"
)

var runCmd = &cobra.Command{
	Use:   "run <file> [args...]",
	Short: "Exécute un fichier .algo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runFile(args[0], args[1:])
	},
}

// runFile implements the file-interpreter entry point (spec §6): read
// UTF-8, strip a trailing newline, parse, evaluate; exit code 1 on a
// missing file, 666 on a parse or runtime fatal error.
func runFile(path string, progArgs []string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fatalf(1, "*** %s : fichier non trouvé", path)
		}
		return fatalf(1, "*** %s : %v", path, err)
	}
	src := strings.TrimSuffix(string(raw), "\n")

	p := parser.New(src)
	prog, err := p.ParseProgram()
	if err != nil {
		return fatalf(666, "*** %v", err)
	}
	if len(p.Errors()) > 0 {
		var sb strings.Builder
		for _, e := range p.Errors() {
			sb.WriteString(e.Format())
			sb.WriteByte('\n')
		}
		return fatalf(666, "*** %s", strings.TrimRight(sb.String(), "\n"))
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		dir = "."
	}

	it := interp.New(interp.WithMainDir(dir), interp.WithArgs(progArgs))
	it.Trace = traceFlag
	it.SetWorkingDir(dir)

	if err := it.Run(prog); err != nil {
		if re, ok := err.(*environment.RuntimeError); ok && re.Kind == environment.UserInterrupt {
			return nil
		}
		return fatalf(666, "*** %v", err)
	}
	return nil
}
