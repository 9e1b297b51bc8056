package environment

// RefTarget is a binding from a local name to a variable descriptor in
// another scope (GLOSSARY "Reference"). References never appear as values
// — only as resolution targets (spec §3 Invariants) — so this type lives
// here, not in the values package.
type RefTarget struct {
	Namespace string
	Name      string
}

// refKey identifies a (namespace, name) pair for the visited-set cycle
// guard during reference resolution.
func refKey(ns, name string) string { return ns + "\x00" + name }
