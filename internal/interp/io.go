package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/fileio"
	"github.com/teegre/fralgo-go/internal/lexer"
	"github.com/teegre/fralgo-go/internal/values"
)

// fileioModeOf maps the parsed mode keyword to a fileio.Mode (spec §4.5).
func fileioModeOf(t lexer.TokenType) (fileio.Mode, error) {
	switch t {
	case lexer.LECTURE:
		return fileio.Lecture, nil
	case lexer.ECRITURE:
		return fileio.Ecriture, nil
	case lexer.AJOUT:
		return fileio.Ajout, nil
	}
	return 0, environment.New(environment.TypeMismatch, "mode de fichier inconnu")
}

// execPrint evaluates every argument, converts booleans to their French
// spelling, joins with single spaces, and writes a trailing newline unless
// suppressed by a trailing `\` (spec §4.3 Print/PrintErr).
func (it *Interp) execPrint(n *ast.PrintStmt) error {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		v, err := it.eval(a)
		if err != nil {
			return err
		}
		parts[i] = v.String()
	}
	out := it.Out
	if n.ToErr {
		out = it.ErrOut
	}
	line := strings.Join(parts, " ")
	if !n.NoNewline {
		line += "\n"
	}
	_, err := fmt.Fprint(out, line)
	return err
}

// execRead reads a line from standard input and parses it according to the
// target's declared (current) type (spec §4.3 Read).
func (it *Interp) execRead(n *ast.ReadStmt) error {
	line, err := it.In.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return environment.New(environment.Fatal, "lecture impossible : %v", err)
	}
	old, err := it.evalPath(n.Target)
	if err != nil {
		return err
	}
	parsed, err := parseInput(old, line)
	if err != nil {
		return err
	}
	return it.assignPath(n.Target, parsed)
}

// parseInput converts raw input text into a value matching old's variant.
func parseInput(old values.Value, line string) (values.Value, error) {
	switch old.(type) {
	case *values.Integer:
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, environment.New(environment.TypeMismatch, "entier attendu : %q", line)
		}
		return values.NewInteger(n), nil
	case *values.Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return nil, environment.New(environment.TypeMismatch, "nombre attendu : %q", line)
		}
		return values.NewFloat(f), nil
	case *values.Boolean:
		switch strings.TrimSpace(line) {
		case "VRAI":
			return values.NewBoolean(true), nil
		case "FAUX":
			return values.NewBoolean(false), nil
		}
		return nil, environment.New(environment.TypeMismatch, "VRAI ou FAUX attendu : %q", line)
	case *values.SizedChar:
		return values.NewString(line), nil // re-sized by coerceAssign against the slot
	default:
		return values.NewString(line), nil
	}
}

// execResize delegates to Array.Resize after evaluating the new dimensions
// (spec §4.3 ArrayResize).
func (it *Interp) execResize(n *ast.ResizeStmt) error {
	ns := it.NS.Current()
	v, err := ns.GetVariable(n.Target.Base, ns.Name)
	if err != nil {
		return err
	}
	arr, ok := v.(*values.Array)
	if !ok {
		return environment.New(environment.TypeMismatch, "%s : tableau attendu", n.Target.Base)
	}
	dims, err := it.evalIndexes(n.Dims)
	if err != nil {
		return err
	}
	if err := arr.Resize(dims); err != nil {
		return environment.New(environment.ResizeFailed, "%s : %v", n.Target.Base, err)
	}
	return nil
}

func (it *Interp) channelNumber(e ast.Expression) (int, error) {
	v, err := it.eval(e)
	if err != nil {
		return 0, err
	}
	return int(asMust(v))
}

func asMust(v values.Value) int64 {
	if iv, ok := v.(*values.Integer); ok && iv.Defined {
		return iv.Value
	}
	return -1
}

func (it *Interp) execFileOpen(n *ast.FileOpenStmt) error {
	fname, err := it.eval(n.Filename)
	if err != nil {
		return err
	}
	fs, ok := fname.(*values.String)
	if !ok {
		return environment.New(environment.TypeMismatch, "Ouvrir : nom de fichier Chaîne attendu")
	}
	ch, err := it.channelNumber(n.Channel)
	if err != nil {
		return err
	}
	mode, err := fileioModeOf(n.Mode)
	if err != nil {
		return err
	}
	if err := it.Files.Open(fs.Value, ch, mode); err != nil {
		return environment.New(environment.Fatal, "Ouvrir : %v", err)
	}
	return nil
}

func (it *Interp) execFileClose(n *ast.FileCloseStmt) error {
	ch, err := it.channelNumber(n.Channel)
	if err != nil {
		return err
	}
	if err := it.Files.Close(ch); err != nil {
		return environment.New(environment.Fatal, "Fermer : %v", err)
	}
	return nil
}

func (it *Interp) execFileRead(n *ast.FileReadStmt) error {
	ch, err := it.channelNumber(n.Channel)
	if err != nil {
		return err
	}
	line, err := it.Files.ReadLine(ch)
	if err != nil {
		return environment.New(environment.Fatal, "LireFichier : %v", err)
	}
	old, err := it.evalPath(n.Target)
	if err != nil {
		return err
	}
	parsed, err := parseInput(old, line)
	if err != nil {
		return err
	}
	return it.assignPath(n.Target, parsed)
}

func (it *Interp) execFileWrite(n *ast.FileWriteStmt) error {
	ch, err := it.channelNumber(n.Channel)
	if err != nil {
		return err
	}
	v, err := it.eval(n.Value)
	if err != nil {
		return err
	}
	if err := it.Files.WriteLine(ch, v.String()); err != nil {
		return environment.New(environment.Fatal, "EcrireFichier : %v", err)
	}
	return nil
}
