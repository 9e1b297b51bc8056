package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeAlgoFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), runErr
}

func TestRunFileExecutesAndPrints(t *testing.T) {
	dir := t.TempDir()
	path := writeAlgoFile(t, dir, "prog.algo", "Début\nEcrire \"bonjour\"\nFin\n")

	out, err := captureStdout(t, func() error {
		return runFile(path, nil)
	})
	if err != nil {
		t.Fatalf("runFile: %v", err)
	}
	if out != "bonjour\n" {
		t.Fatalf("got %q, want %q", out, "bonjour\n")
	}
}

func TestRunFileMissingFileExitsOne(t *testing.T) {
	err := runFile(filepath.Join(t.TempDir(), "nope.algo"), nil)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if ExitCode(err) != 1 {
		t.Fatalf("got exit code %d, want 1", ExitCode(err))
	}
}

func TestRunFileSyntaxErrorExits666(t *testing.T) {
	dir := t.TempDir()
	path := writeAlgoFile(t, dir, "bad.algo", "Si $$$ Alors\nFinSi\n")

	err := runFile(path, nil)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if ExitCode(err) != 666 {
		t.Fatalf("got exit code %d, want 666", ExitCode(err))
	}
}

func TestRunFilePassesArgsAsArgsArray(t *testing.T) {
	dir := t.TempDir()
	path := writeAlgoFile(t, dir, "args.algo", "Début\nEcrire Longueur(_ARGS)\nFin\n")

	out, err := captureStdout(t, func() error {
		return runFile(path, []string{"un", "deux", "trois"})
	})
	if err != nil {
		t.Fatalf("runFile: %v", err)
	}
	if out != "3\n" {
		t.Fatalf("got %q, want %q", out, "3\n")
	}
}

func TestRunFileRuntimeErrorExits666(t *testing.T) {
	dir := t.TempDir()
	path := writeAlgoFile(t, dir, "panic.algo", `Début
Panique "échec volontaire"
Fin
`)
	err := runFile(path, nil)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	if ExitCode(err) != 666 {
		t.Fatalf("got exit code %d, want 666", ExitCode(err))
	}
}
