package environment

import "fmt"

// Kind tags the category of a runtime error raised by the environment or
// the evaluator that walks it (spec §7 Error Handling Design).
type Kind int

const (
	TypeMismatch Kind = iota
	Undefined
	Undeclared
	Redeclared
	IndexOutOfRange
	ResizeFailed
	InvalidCharSize
	UnknownField
	InvalidParamCount
	ZeroDivide
	ReadOnly
	Panic
	UserInterrupt
	Fatal
	Recursion
	PrivateAccess
)

var kindNames = map[Kind]string{
	TypeMismatch:      "type incompatible",
	Undefined:         "valeur non définie",
	Undeclared:        "non déclaré",
	Redeclared:        "déjà déclaré",
	IndexOutOfRange:   "index hors limite",
	ResizeFailed:      "redimensionnement impossible",
	InvalidCharSize:   "taille de caractère invalide",
	UnknownField:      "champ inconnu",
	InvalidParamCount: "nombre de paramètres invalide",
	ZeroDivide:        "division par zéro",
	ReadOnly:          "valeur en lecture seule",
	Panic:             "panique",
	UserInterrupt:     "interruption utilisateur",
	Fatal:             "erreur fatale",
	Recursion:         "excès de récursivité",
	PrivateAccess:     "symbole privé",
}

func (k Kind) String() string { return kindNames[k] }

// RuntimeError is the tagged error every namespace/frame operation and every
// evaluator node may raise.
type RuntimeError struct {
	Kind    Kind
	Message string
}

func (e *RuntimeError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// New builds a RuntimeError of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a RuntimeError of kind k, for errors.Is-style
// call sites that only care about the category.
func Is(err error, k Kind) bool {
	re, ok := err.(*RuntimeError)
	return ok && re.Kind == k
}
