package environment

import (
	"testing"

	"github.com/teegre/fralgo-go/internal/values"
)

func TestDeclareVariable_GlobalThenLocalShadows(t *testing.T) {
	ns := NewNamespaces()
	main := ns.Current()
	if err := main.DeclareVariable("x", values.NewInteger(1), false, false); err != nil {
		t.Fatal(err)
	}
	main.PushFrame(Context{Name: "f"})
	if err := main.DeclareVariable("x", values.NewInteger(2), false, false); err != nil {
		t.Fatal(err)
	}
	v, err := main.GetVariable("x", "main")
	if err != nil {
		t.Fatal(err)
	}
	if v.(*values.Integer).Value != 2 {
		t.Errorf("expected local shadow, got %v", v)
	}
	main.PopFrame()
	v, err = main.GetVariable("x", "main")
	if err != nil {
		t.Fatal(err)
	}
	if v.(*values.Integer).Value != 1 {
		t.Errorf("expected global after pop, got %v", v)
	}
}

func TestDeclareVariable_RedeclaredFails(t *testing.T) {
	ns := NewNamespaces()
	main := ns.Current()
	main.DeclareVariable("x", values.NewInteger(1), false, false)
	err := main.DeclareVariable("x", values.NewInteger(2), false, false)
	if !Is(err, Redeclared) {
		t.Fatalf("expected Redeclared, got %v", err)
	}
}

func TestSetVariable_ReadOnlyFails(t *testing.T) {
	ns := NewNamespaces()
	main := ns.Current()
	main.DeclareVariable("PI", values.NewFloat(3.14), true, false)
	err := main.SetVariable("PI", values.NewFloat(1))
	if !Is(err, ReadOnly) {
		t.Fatalf("expected ReadOnly, got %v", err)
	}
}

func TestGetVariable_UndeclaredFails(t *testing.T) {
	ns := NewNamespaces()
	main := ns.Current()
	if _, err := main.GetVariable("nope", "main"); !Is(err, Undeclared) {
		t.Fatalf("expected Undeclared, got %v", err)
	}
}

func TestReference_ResolvesThroughDereferenceFlag(t *testing.T) {
	ns := NewNamespaces()
	main := ns.Current()
	main.DeclareVariable("caller_var", values.NewInteger(5), false, false)

	main.PushFrame(Context{Name: "proc"})
	main.BindReference("T", RefTarget{Namespace: "main", Name: "caller_var"})
	main.SetDereference(true)

	v, err := main.GetVariable("T", "main")
	if err != nil {
		t.Fatal(err)
	}
	if v.(*values.Integer).Value != 5 {
		t.Errorf("got %v, want 5", v)
	}

	if err := main.SetVariable("T", values.NewInteger(9)); err != nil {
		t.Fatal(err)
	}
	main.PopFrame()

	back, err := main.GetVariable("caller_var", "main")
	if err != nil {
		t.Fatal(err)
	}
	if back.(*values.Integer).Value != 9 {
		t.Errorf("write-through reference failed, got %v", back)
	}
}

func TestReference_CycleIsDetected(t *testing.T) {
	ns := NewNamespaces()
	main := ns.Current()
	main.PushFrame(Context{Name: "f"})
	main.BindReference("a", RefTarget{Namespace: "main", Name: "b"})
	main.SetDereference(true)
	main.BindReference("b", RefTarget{Namespace: "main", Name: "a"})

	if _, err := main.GetVariable("a", "main"); err == nil {
		t.Fatal("expected cycle error")
	}
}

func TestNamespaces_MainFallback(t *testing.T) {
	ns := NewNamespaces()
	ns.Current().DeclareVariable("shared", values.NewInteger(42), false, false)
	util, err := ns.DeclareNamespace("util")
	if err != nil {
		t.Fatal(err)
	}
	v, err := util.GetVariable("shared", "util")
	if err != nil {
		t.Fatal(err)
	}
	if v.(*values.Integer).Value != 42 {
		t.Errorf("expected main-namespace fallback, got %v", v)
	}
}

func TestNamespaces_ImportStackRestoresCurrent(t *testing.T) {
	ns := NewNamespaces()
	ns.DeclareNamespace("util")
	ns.SetCurrent("main")
	ns.PushImport("util")
	if ns.CurrentName() != "util" {
		t.Fatalf("expected util current, got %s", ns.CurrentName())
	}
	ns.PopImport()
	if ns.CurrentName() != "main" {
		t.Fatalf("expected main restored, got %s", ns.CurrentName())
	}
}

func TestPrivateSymbol_CrossNamespaceAccessFails(t *testing.T) {
	ns := NewNamespaces()
	main := ns.Current()
	main.DeclareVariable("@secret", values.NewInteger(1), false, false)
	if _, err := main.GetVariable("@secret", "util"); !Is(err, PrivateAccess) {
		t.Fatalf("expected PrivateAccess, got %v", err)
	}
	if _, err := main.GetVariable("@secret", "main"); err != nil {
		t.Fatalf("same-namespace access should succeed: %v", err)
	}
}

func TestSuperglobal_DeclaredOnceVisibleFromAnyNamespace(t *testing.T) {
	ns := NewNamespaces()
	ns.Current().DeclareVariable("_ARGS", values.NewString("a b"), false, true)
	util, _ := ns.DeclareNamespace("util")
	v, err := util.GetVariable("_ARGS", "util")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "a b" {
		t.Errorf("got %q", v.String())
	}
}
