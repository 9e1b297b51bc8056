package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/teegre/fralgo-go/internal/interp"
)

func newTestShell(t *testing.T, stdin string) (*Shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	it := interp.New(interp.WithIO(strings.NewReader(""), &out, &out))
	s := New(it, strings.NewReader(stdin), &out, &out)
	return s, &out
}

func TestPromptStates(t *testing.T) {
	s, _ := newTestShell(t, "")
	if got := s.prompt(); got != "::: " {
		t.Fatalf("got %q, want fresh prompt", got)
	}
	s.loop = true
	if got := s.prompt(); got != "... " {
		t.Fatalf("got %q, want continuation prompt", got)
	}
	s.loop = false
	s.cancel = true
	if got := s.prompt(); got != ":x: " {
		t.Fatalf("got %q, want cancel prompt", got)
	}
	// cancel resets itself after one read.
	if got := s.prompt(); got != "::: " {
		t.Fatalf("got %q, want fresh prompt after cancel consumed", got)
	}
}

func TestAcceptSingleLineReadyImmediately(t *testing.T) {
	s, _ := newTestShell(t, "")
	instr, ready := s.accept("Ecrire 1")
	if !ready || instr != "Ecrire 1" {
		t.Fatalf("got %q %v, want ready single line", instr, ready)
	}
}

func TestAcceptBuffersForBlockUntilSuivant(t *testing.T) {
	s, _ := newTestShell(t, "")
	if _, ready := s.accept("Pour i ← 1 à 3"); ready {
		t.Fatalf("expected block to stay open after Pour")
	}
	if _, ready := s.accept("  Ecrire i"); ready {
		t.Fatalf("expected block to stay open after loop body line")
	}
	instr, ready := s.accept("i Suivant")
	if !ready {
		t.Fatalf("expected i Suivant to close the block")
	}
	want := "Pour i ← 1 à 3\n  Ecrire i\ni Suivant"
	if instr != want {
		t.Fatalf("got %q, want %q", instr, want)
	}
}

func TestAcceptNestedBlocksRequireMatchingCloses(t *testing.T) {
	s, _ := newTestShell(t, "")
	s.accept("Si n > 0 Alors")
	if _, ready := s.accept("TantQue n > 0"); ready {
		t.Fatalf("expected nested block to stay open")
	}
	if s.level != 2 {
		t.Fatalf("got level %d, want 2 after two nested opens", s.level)
	}
	if _, ready := s.accept("  n ← n - 1"); ready {
		t.Fatalf("expected body line to stay buffered")
	}
	if _, ready := s.accept("FinTantQue"); ready {
		t.Fatalf("expected the inner close to leave the outer block open")
	}
	if s.level != 1 {
		t.Fatalf("got level %d, want 1 after one close", s.level)
	}
	_, ready := s.accept("FinSi")
	if !ready {
		t.Fatalf("expected the outer close to finish the block")
	}
}

func TestAcceptBlankLineCancelsPendingBlock(t *testing.T) {
	s, _ := newTestShell(t, "")
	s.accept("Pour i ← 1 à 3")
	instr, ready := s.accept("")
	if ready || instr != "" {
		t.Fatalf("got %q %v, want cancelled with nothing to evaluate", instr, ready)
	}
	if s.loop {
		t.Fatalf("expected loop buffering to be cancelled")
	}
	if !s.cancel {
		t.Fatalf("expected cancel to be recorded for the next prompt")
	}
}

func TestAcceptRejectsDisallowedTopLevelKeyword(t *testing.T) {
	s, out := newTestShell(t, "")
	instr, ready := s.accept("Début")
	if ready || instr != "" {
		t.Fatalf("got %q %v, want rejected", instr, ready)
	}
	if !strings.Contains(out.String(), "non admises") {
		t.Fatalf("expected a rejection message, got %q", out.String())
	}
}

func TestMetaCommandTraceToggles(t *testing.T) {
	s, out := newTestShell(t, "")
	s.accept(".trace")
	if !s.Trace || !s.It.Trace {
		t.Fatalf("expected trace to be enabled")
	}
	if !strings.Contains(out.String(), "VRAI") {
		t.Fatalf("got %q, want a VRAI confirmation", out.String())
	}
	s.accept(".trace")
	if s.Trace {
		t.Fatalf("expected trace to toggle back off")
	}
}

func TestMetaCommandReinitResetsNamespaces(t *testing.T) {
	s, _ := newTestShell(t, "")
	s.evalLine("Variable x en Entier")
	s.accept(".réinit")
	if _, err := s.It.NS.Current().GetVariable("x", "main"); err == nil {
		t.Fatalf("expected x to be gone after réinit")
	}
}

func TestRunExecutesPrintStatement(t *testing.T) {
	s, out := newTestShell(t, "Ecrire 2 + 2\n")
	s.Run()
	if !strings.Contains(out.String(), "4") {
		t.Fatalf("got %q, want it to contain 4", out.String())
	}
}

func TestRunPrintsFarewellOnEOF(t *testing.T) {
	s, out := newTestShell(t, "")
	s.Run()
	if !strings.Contains(out.String(), "Au revoir") {
		t.Fatalf("got %q, want a farewell message", out.String())
	}
}

func TestRunAccumulatesDeclarationsAcrossLines(t *testing.T) {
	src := "Variable x en Entier\nx ← 10\nEcrire x\n"
	s, out := newTestShell(t, src)
	s.Run()
	if !strings.Contains(out.String(), "10") {
		t.Fatalf("got %q, want it to contain 10", out.String())
	}
}

func TestRunExecutesMultiLineForLoop(t *testing.T) {
	src := "Variable i en Entier\nPour i ← 1 à 3\n  Ecrire i\ni Suivant\n"
	s, out := newTestShell(t, src)
	s.Run()
	got := out.String()
	for _, want := range []string{"1", "2", "3"} {
		if !strings.Contains(got, want) {
			t.Fatalf("got %q, want it to contain %q", got, want)
		}
	}
}

func TestFrenchBool(t *testing.T) {
	if frenchBool(true) != "VRAI" {
		t.Fatalf("got %q, want VRAI", frenchBool(true))
	}
	if frenchBool(false) != "FAUX" {
		t.Fatalf("got %q, want FAUX", frenchBool(false))
	}
}
