// Package shell implements the interactive line-oriented REPL (spec §4.7,
// §6): prompts, multi-line block buffering, meta-commands, and a history
// file. Grounded on original_source/fralgo/fralgorepl.py.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/interp"
	"github.com/teegre/fralgo-go/internal/parser"
	"github.com/teegre/fralgo-go/internal/values"
)

// startHook opens a multi-line block; loopHook nests an indentation level;
// endHook closes one by its line's leading keyword. Extended from the
// original's TantQue/Pour/Si/Structure set to also cover
// Fonction/Procédure/Table declarations, which the distillation's REPL
// source predates. `Pour` is the one exception: the grammar closes it
// with a trailing `<var> Suivant` (original_source/fralgo/fralgorepl.py),
// so it is matched against the line's LAST field instead of endHook's
// leading-keyword lookup.
var startHook = map[string]bool{
	"TantQue": true, "Pour": true, "Si": true, "Sinon": true, "SinonSi": true,
	"Structure": true, "Fonction": true, "Procédure": true, "Table": true,
}

var loopHook = map[string]bool{
	"TantQue": true, "Pour": true, "Si": true,
	"Structure": true, "Fonction": true, "Procédure": true, "Table": true,
}

var endHook = map[string]bool{
	"FinTantQue": true, "FinSi": true, "FinStructure": true,
	"FinFonction": true, "FinProcédure": true, "FinTable": true,
}

const forEndHook = "Suivant"

// disallowed lists top-level tokens spec §6 forbids in the shell: a
// program's own Début/Fin/Librairie/Initialise headers have no meaning
// inside an already-running interpreter.
var disallowed = map[string]bool{
	"Début": true, "Fin": true, "Librairie": true, "Initialise": true,
}

// Shell is one REPL session bound to an Interp.
type Shell struct {
	It     *interp.Interp
	In     *bufio.Reader
	Out    io.Writer
	ErrOut io.Writer
	Trace  bool

	loop    bool
	cancel  bool
	level   int
	buffer  []string
	history *os.File
}

// New builds a Shell reading from in and writing to out/errOut, opening
// (or creating) the history file at $HOME/.fralgohistory with mode 0600
// (spec §6 "History file").
func New(it *interp.Interp, in io.Reader, out, errOut io.Writer) *Shell {
	s := &Shell{It: it, In: bufio.NewReader(in), Out: out, ErrOut: errOut}
	s.openHistory()
	return s
}

func (s *Shell) openHistory() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	path := filepath.Join(home, ".fralgohistory")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	s.history = f
}

func (s *Shell) recordHistory(line string) {
	if s.history == nil || strings.TrimSpace(line) == "" {
		return
	}
	fmt.Fprintln(s.history, line)
}

func (s *Shell) prompt() string {
	if s.loop {
		return "... "
	}
	if s.cancel {
		s.cancel = false
		return ":x: "
	}
	return "::: "
}

// Run starts the read-eval-print loop. It returns when stdin reaches EOF
// (Ctrl-D), matching the original's "*** Au revoir" farewell.
func (s *Shell) Run() {
	os.Setenv("FRALGOREPL", "1")
	s.banner()
	for {
		fmt.Fprint(s.Out, s.prompt())
		line, err := s.In.ReadString('\n')
		atEOF := err != nil
		line = strings.TrimRight(line, "\n")
		if atEOF && line == "" {
			fmt.Fprintln(s.Out)
			fmt.Fprintln(s.Out, "*** Au revoir !")
			return
		}
		s.recordHistory(line)
		if instr, ready := s.accept(line); ready && instr != "" {
			s.evalLine(instr)
		}
		if atEOF {
			fmt.Fprintln(s.Out)
			fmt.Fprintln(s.Out, "*** Au revoir !")
			return
		}
	}
}

func (s *Shell) banner() {
	fmt.Fprintln(s.Out, "Interpréteur Algo interactif.")
	fmt.Fprintln(s.Out, "En attente de vos instructions.")
	fmt.Fprintln(s.Out)
}

// accept feeds one raw input line through the block-buffering state
// machine and the meta-command dispatcher. It returns the instruction
// ready to evaluate (possibly several buffered lines joined by "\n") and
// whether one is ready at all.
func (s *Shell) accept(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)

	if !s.loop {
		switch {
		case trimmed == ".trace":
			s.Trace = !s.Trace
			s.It.Trace = s.Trace
			fmt.Fprintf(s.Out, "*** trace est %s\n", frenchBool(s.Trace))
			return "", false
		case trimmed == ".réinit":
			s.It.NS.Reset()
			fmt.Fprintln(s.Out, "*** environnement réinitialisé")
			return "", false
		case trimmed == ".espaces":
			for _, n := range s.It.NS.Names() {
				fmt.Fprintln(s.Out, n)
			}
			return "", false
		case trimmed == ".symboles" || strings.HasPrefix(trimmed, ".symboles "):
			ns := strings.TrimSpace(strings.TrimPrefix(trimmed, ".symboles"))
			s.dumpSymbols(ns)
			return "", false
		}
	}

	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		// A blank line cancels any block being buffered, matching the
		// original's "no instruction" branch.
		s.cancel = s.loop
		s.loop = false
		s.level = 0
		s.buffer = nil
		return "", false
	}

	head := fields[0]
	if disallowed[head] {
		fmt.Fprintln(s.Out, "*** instructions Début et Fin non admises en mode interpréteur")
		return "", false
	}

	if startHook[head] {
		s.loop = true
	}
	if loopHook[head] {
		s.level++
	}

	tail := fields[len(fields)-1]
	if endHook[head] || tail == forEndHook {
		s.level--
		if s.level <= 0 {
			s.loop = false
			s.buffer = append(s.buffer, line)
			full := strings.Join(s.buffer, "\n")
			s.buffer = nil
			return full, true
		}
	}

	if s.loop {
		s.buffer = append(s.buffer, line)
		return "", false
	}
	return line, true
}

func frenchBool(b bool) string {
	if b {
		return "VRAI"
	}
	return "FAUX"
}

// evalLine parses and executes one (possibly multi-line) instruction,
// printing the value of a bare expression statement the way the original
// REPL prints whatever its parsed node's eval() returns.
func (s *Shell) evalLine(instr string) {
	p := parser.New(instr)
	p.Interactive = true
	prog, err := p.ParseProgram()
	if err != nil {
		s.reportError(err)
		return
	}
	if len(p.Errors()) > 0 {
		for _, e := range p.Errors() {
			fmt.Fprintln(s.ErrOut, e.Format())
		}
		return
	}

	if err := s.It.RunDeclarationsOnly(prog); err != nil {
		s.reportError(err)
		return
	}
	if prog.Body == nil {
		return
	}
	if len(prog.Body.Statements) == 1 {
		if es, ok := prog.Body.Statements[0].(*ast.ExprStmt); ok {
			v, err := s.It.Eval(es.Expr)
			if err != nil {
				s.reportError(err)
				return
			}
			if _, isNothing := v.(values.Nothing); !isNothing {
				fmt.Fprintln(s.Out, v.String())
			}
			return
		}
	}
	if _, err := s.It.RunBlock(prog.Body); err != nil {
		s.reportError(err)
	}
}

func (s *Shell) reportError(err error) {
	if re, ok := err.(*environment.RuntimeError); ok {
		fmt.Fprintln(s.Out, "***", re.Error())
		return
	}
	fmt.Fprintln(s.Out, "***", err)
}

func (s *Shell) dumpSymbols(namespace string) {
	ns := s.It.NS.Get(namespace)
	if ns == nil {
		fmt.Fprintf(s.Out, "*** %s : espace de noms non déclaré\n", namespace)
		return
	}
	for name := range ns.Globals {
		fmt.Fprintln(s.Out, name)
	}
	for name := range ns.Functions {
		fmt.Fprintln(s.Out, name)
	}
	for name := range ns.Structures {
		fmt.Fprintln(s.Out, name)
	}
}
