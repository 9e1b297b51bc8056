// Package libman resolves and parses library files for the Importer
// statement (spec §4.6). It depends only on parser/ast, never on interp,
// so that interp can depend on it without a cycle.
package libman

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/parser"
)

const fileExt = ".algo"

// Loader resolves library filenames against the running program's
// directory, falling back to the user library directory.
type Loader struct {
	mainDir string
}

// New builds a Loader rooted at mainDir (the directory containing the
// program being interpreted).
func New(mainDir string) *Loader {
	return &Loader{mainDir: mainDir}
}

// userLibDir returns ~/.local/lib/fralgo, or "" if $HOME is unset.
func userLibDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".local", "lib", "fralgo")
}

func withExt(libfile string) string {
	if filepath.Ext(libfile) == "" {
		return libfile + fileExt
	}
	return libfile
}

// resolve finds libfile on disk: first relative to mainDir, then under the
// user library directory.
func (l *Loader) resolve(libfile string) (string, error) {
	name := withExt(libfile)
	candidates := []string{filepath.Join(l.mainDir, name)}
	if dir := userLibDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("%s : fichier introuvable", libfile)
}

// Load resolves, reads and parses libfile, rejecting anything not headed
// by Librairie.
func (l *Loader) Load(libfile string) (*ast.Program, error) {
	path, err := l.resolve(libfile)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s : %w", libfile, err)
	}
	p := parser.New(string(src))
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("%s : %w", libfile, err)
	}
	if errs := p.Errors(); len(errs) > 0 {
		return nil, fmt.Errorf("%s : %v", libfile, errs[0])
	}
	if !prog.IsLibrary {
		return nil, fmt.Errorf("%s : n'est pas une librairie", libfile)
	}
	return prog, nil
}
