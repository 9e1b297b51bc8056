package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/teegre/fralgo-go/internal/parser"
	"github.com/teegre/fralgo-go/internal/values"
)

// run parses and executes src, returning what it wrote to stdout.
func run(t *testing.T, src string) (string, *Interp) {
	t.Helper()
	p := parser.New(src)
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors: %v", p.Errors()[0].Format())
	}
	var out bytes.Buffer
	it := New(WithIO(strings.NewReader(""), &out, &out))
	if err := it.Run(prog); err != nil {
		t.Fatalf("run error: %v", err)
	}
	return out.String(), it
}

func TestArithmeticAndPrint(t *testing.T) {
	src := `Début
Ecrire 2 + 3 * 4
Ecrire 10 / 4
Ecrire 10.0 / 4
Ecrire "a" & "b"
Fin
`
	out, _ := run(t, src)
	want := "14\n2\n2.5\nab\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestIfElseIf(t *testing.T) {
	src := `Variable n en Entier
Début
n ← 2
Si n = 1 Alors
  Ecrire "un"
SinonSi n = 2 Alors
  Ecrire "deux"
Sinon
  Ecrire "autre"
FinSi
Fin
`
	out, _ := run(t, src)
	if out != "deux\n" {
		t.Fatalf("got %q", out)
	}
}

func TestWhileLoop(t *testing.T) {
	src := `Variable i en Entier
Début
i ← 0
TantQue i < 3
  Ecrire i
  i ← i + 1
FinTantQue
Fin
`
	out, _ := run(t, src)
	if out != "0\n1\n2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestForLoop(t *testing.T) {
	src := `Variable i en Entier
Début
Pour i ← 1 à 3
  Ecrire i
i Suivant
Fin
`
	out, _ := run(t, src)
	if out != "1\n2\n3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestFunctionCallAndRecursion(t *testing.T) {
	src := `Fonction Factorielle(n en Entier) en Entier
Si n <= 1 Alors
  Retourne 1
FinSi
Retourne n * Factorielle(n - 1)
FinFonction
Début
Ecrire Factorielle(5)
Fin
`
	out, _ := run(t, src)
	if out != "120\n" {
		t.Fatalf("got %q", out)
	}
}

func TestProcedureByReference(t *testing.T) {
	src := `Procédure Incremente(&x en Entier)
x ← x + 1
FinProcédure
Variable n en Entier
Début
n ← 41
Incremente(&n)
Ecrire n
Fin
`
	out, _ := run(t, src)
	if out != "42\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRecursionLimit(t *testing.T) {
	src := `Fonction Boucle(n en Entier) en Entier
Retourne Boucle(n + 1)
FinFonction
Début
Ecrire Boucle(0)
Fin
`
	p := parser.New(src)
	prog, err := p.ParseProgram()
	if err != nil || len(p.Errors()) > 0 {
		t.Fatalf("parse failed: %v", err)
	}
	var out bytes.Buffer
	it := New(WithIO(strings.NewReader(""), &out, &out))
	err = it.Run(prog)
	if err == nil {
		t.Fatalf("expected a recursion error, got none")
	}
	if !strings.Contains(err.Error(), "récursivité") {
		t.Fatalf("got %v, want a recursion error", err)
	}
}

func TestArrayAssignmentAndResize(t *testing.T) {
	src := `Tableau T[4] en Entier
Variable i en Entier
Début
Pour i ← 0 à 4
  T[i] ← i * i
i Suivant
Ecrire T[3]
Fin
`
	out, _ := run(t, src)
	if out != "9\n" {
		t.Fatalf("got %q", out)
	}
}

func TestArrayLiteralAssignment(t *testing.T) {
	src := `Tableau T[] en Entier
Début
T ← [1, 2, 3]
Ecrire T[2]
Fin
`
	out, _ := run(t, src)
	if out != "3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestArrayLiteralRejectsMixedTypes(t *testing.T) {
	src := `Tableau T[] en Quelconque
Début
T ← [1, "x"]
Fin
`
	p := parser.New(src)
	prog, err := p.ParseProgram()
	if err != nil || len(p.Errors()) > 0 {
		t.Fatalf("parse failed: %v", err)
	}
	var out bytes.Buffer
	it := New(WithIO(strings.NewReader(""), &out, &out))
	if err := it.Run(prog); err == nil {
		t.Fatalf("expected a type mismatch error for a mixed-type literal")
	}
}

func TestArrayLiteralRejectsRaggedSubArrays(t *testing.T) {
	src := `Tableau T[] en Quelconque
Début
T ← [[1, 2], [3]]
Fin
`
	p := parser.New(src)
	prog, err := p.ParseProgram()
	if err != nil || len(p.Errors()) > 0 {
		t.Fatalf("parse failed: %v", err)
	}
	var out bytes.Buffer
	it := New(WithIO(strings.NewReader(""), &out, &out))
	if err := it.Run(prog); err == nil {
		t.Fatalf("expected an error for a ragged multidimensional literal")
	}
}

func TestStructureTupleAssignment(t *testing.T) {
	src := `Structure Point
x en Entier
y en Entier
FinStructure
Variable p en Point
Début
p ← (3, 4)
Ecrire p.x + p.y
Fin
`
	out, _ := run(t, src)
	if out != "7\n" {
		t.Fatalf("got %q", out)
	}
}

func TestTableBuiltins(t *testing.T) {
	src := `Table T en Chaîne, Entier
Début
T["a"] ← 1
T["b"] ← 2
Ecrire Existe(T, "a")
Ecrire Existe(T, "c")
Ecrire Longueur(T)
Fin
`
	out, _ := run(t, src)
	if out != "VRAI\nFAUX\n2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestStringBuiltins(t *testing.T) {
	src := `Début
Ecrire Extraire("Bonjour", 1, 3)
Ecrire Gauche("Bonjour", 3)
Ecrire Droite("Bonjour", 3)
Ecrire Trouve("Bonjour", "jour")
Ecrire Trouve("Bonjour", "zzz")
Fin
`
	out, _ := run(t, src)
	want := "Bon\nBon\nour\n4\n0\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestReadOnlyConstant(t *testing.T) {
	src := `Constante PI en Numérique = 3.14
Début
PI ← 1.0
Fin
`
	p := parser.New(src)
	prog, err := p.ParseProgram()
	if err != nil || len(p.Errors()) > 0 {
		t.Fatalf("parse failed: %v", err)
	}
	var out bytes.Buffer
	it := New(WithIO(strings.NewReader(""), &out, &out))
	if err := it.Run(prog); err == nil {
		t.Fatalf("expected a read-only error, got none")
	}
}

func TestSuperglobalArgs(t *testing.T) {
	it := New(WithArgs([]string{"a", "b"}))
	v, err := it.NS.Current().GetVariable("_ARGS", "main")
	if err != nil {
		t.Fatalf("_ARGS lookup failed: %v", err)
	}
	arr, ok := v.(*values.Array)
	if !ok {
		t.Fatalf("_ARGS is not an array: %T", v)
	}
	if arr.Length() != 2 {
		t.Fatalf("got length %d, want 2", arr.Length())
	}
}

// TestImportRestoresCurrentNamespaceForMainBody guards against the import
// stack leaving "current" pointed at the imported namespace: a function
// declared in main, called unqualified after the Importer line, must still
// resolve against main rather than the library's namespace (spec §4.6).
func TestImportRestoresCurrentNamespaceForMainBody(t *testing.T) {
	dir := t.TempDir()
	lib := "Librairie\nFonction Carré(n en Entier) en Entier\nRetourne n * n\nFinFonction\n"
	if err := os.WriteFile(filepath.Join(dir, "math.algo"), []byte(lib), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src := `Fonction Double(n en Entier) en Entier
Retourne n * 2
FinFonction
Importer "math.algo" Alias math
Début
Ecrire Double(5)
Ecrire math:Carré(3)
Fin
`
	p := parser.New(src)
	prog, err := p.ParseProgram()
	if err != nil || len(p.Errors()) > 0 {
		t.Fatalf("parse error: %v %v", err, p.Errors())
	}
	var out bytes.Buffer
	it := New(WithIO(strings.NewReader(""), &out, &out), WithMainDir(dir))
	if err := it.Run(prog); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if want := "10\n9\n"; out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
	if it.NS.CurrentName() != "main" {
		t.Fatalf("got current namespace %q, want main", it.NS.CurrentName())
	}
}
