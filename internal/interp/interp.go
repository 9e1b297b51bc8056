// Package interp walks the AST produced by internal/parser and executes it
// against an internal/environment namespace collection (spec §4.3
// Evaluator).
package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/fileio"
	"github.com/teegre/fralgo-go/internal/libman"
	"github.com/teegre/fralgo-go/internal/values"
)

// maxCallDepth bounds recursive FunctionCall evaluation; exceeding it
// raises environment.Recursion ("excès de récursivité", spec §5) instead of
// letting the host Go stack overflow, which is not recoverable.
const maxCallDepth = 1000

// Interp holds everything one running program shares: the namespace
// collection, I/O streams, the file-channel table, and the library loader.
type Interp struct {
	NS    *environment.Namespaces
	Out   io.Writer
	ErrOut io.Writer
	In    *bufio.Reader
	Files *fileio.Manager
	Libs  *libman.Loader
	Trace bool

	depth int
}

// Option configures a new Interp.
type Option func(*Interp)

// WithMainDir sets the directory used to resolve relative library imports.
// The `_REP` superglobal is set separately, by SetWorkingDir.
func WithMainDir(dir string) Option {
	return func(it *Interp) { it.Libs = libman.New(dir) }
}

// WithArgs declares the `_ARGS` superglobal array from command-line
// arguments (spec §6 "Superglobal constants exposed to programs").
func WithArgs(args []string) Option {
	return func(it *Interp) { it.setArgs(args) }
}

// WithIO overrides the default stdin/stdout/stderr streams.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(it *Interp) {
		it.In = bufio.NewReader(in)
		it.Out = out
		it.ErrOut = errOut
	}
}

// New builds an Interp with a fresh namespace collection.
func New(opts ...Option) *Interp {
	it := &Interp{
		NS:    environment.NewNamespaces(),
		Out:   os.Stdout,
		ErrOut: os.Stderr,
		In:    bufio.NewReader(os.Stdin),
		Files: fileio.New(),
		Libs:  libman.New("."),
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

func (it *Interp) setArgs(args []string) {
	elemType := values.ElemType{Kind: "Chaîne"}
	maxIdx := len(args) - 1
	if maxIdx < 0 {
		maxIdx = -1
	}
	arr := values.NewArray(elemType, []int{maxIdx}, func() values.Value { return values.UndefinedString() })
	for i, a := range args {
		_ = arr.Set([]int{i}, values.NewString(a))
	}
	it.NS.Superglobals["_ARGS"] = &environment.Symbol{Value: arr, ReadOnly: true}
}

// SetWorkingDir declares the `_REP` superglobal: the absolute directory of
// the running source file.
func (it *Interp) SetWorkingDir(dir string) {
	it.NS.Superglobals["_REP"] = &environment.Symbol{Value: values.NewString(dir), ReadOnly: true}
}

// Run executes a parsed program: declarations first (functions, structures,
// globals, imports), then the main/Initialise body if present.
func (it *Interp) Run(prog *ast.Program) error {
	if err := it.execDeclarations(prog.Declarations); err != nil {
		return err
	}
	if prog.Body != nil {
		if _, err := it.execBlock(prog.Body); err != nil {
			return err
		}
	}
	return nil
}

// RunDeclarationsOnly executes prog's declarations without its body, used
// by the shell to accumulate functions/structures/globals across separate
// input lines.
func (it *Interp) RunDeclarationsOnly(prog *ast.Program) error {
	return it.execDeclarations(prog.Declarations)
}

// RunBlock executes a parsed block directly, used by the shell to run one
// buffered multi-line instruction.
func (it *Interp) RunBlock(b *ast.Block) (*Signal, error) {
	return it.execBlock(b)
}

// Eval evaluates a single expression, used by the shell to print the
// value of a bare expression entered at the prompt.
func (it *Interp) Eval(expr ast.Expression) (values.Value, error) {
	return it.eval(expr)
}

// execBlock runs every statement in b in order, stopping at the first
// error or non-nil control signal.
func (it *Interp) execBlock(b *ast.Block) (*Signal, error) {
	for _, stmt := range b.Statements {
		sig, err := it.exec(stmt)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}
