package libman

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadResolvesRelativeToMainDir(t *testing.T) {
	dir := t.TempDir()
	src := "Librairie\nFonction Carré(n en Entier) en Entier\nRetourne n * n\nFinFonction\n"
	if err := os.WriteFile(filepath.Join(dir, "math.algo"), []byte(src), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	l := New(dir)
	prog, err := l.Load("math")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !prog.IsLibrary {
		t.Fatalf("expected IsLibrary")
	}
	if len(prog.Declarations) != 1 {
		t.Fatalf("got %d declarations, want 1", len(prog.Declarations))
	}
}

func TestLoadAcceptsExplicitExtension(t *testing.T) {
	dir := t.TempDir()
	src := "Librairie\n"
	if err := os.WriteFile(filepath.Join(dir, "util.algo"), []byte(src), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	l := New(dir)
	if _, err := l.Load("util.algo"); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	l := New(t.TempDir())
	if _, err := l.Load("nope"); err == nil {
		t.Fatalf("expected an error for a missing library file")
	}
}

func TestLoadRejectsNonLibraryFile(t *testing.T) {
	dir := t.TempDir()
	src := "Début\nEcrire 1\nFin\n"
	if err := os.WriteFile(filepath.Join(dir, "prog.algo"), []byte(src), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	l := New(dir)
	if _, err := l.Load("prog"); err == nil {
		t.Fatalf("expected an error for a file without a Librairie header")
	}
}

func TestLoadRejectsSyntaxError(t *testing.T) {
	dir := t.TempDir()
	src := "Librairie\nSi $$$ Alors\nFinSi\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.algo"), []byte(src), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	l := New(dir)
	if _, err := l.Load("bad"); err == nil {
		t.Fatalf("expected a syntax error to propagate")
	}
}
