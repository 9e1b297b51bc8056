package interp

import (
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/teegre/fralgo-go/internal/ast"
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/values"
)

// rng backs Aléa(); seeded once at process start, like the original's
// module-level random() call.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// evalBuiltin dispatches the fixed built-in catalog (spec §4.3).
func (it *Interp) evalBuiltin(n *ast.BuiltinCall) (values.Value, error) {
	args := make([]values.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	switch n.Name {
	case "Type":
		return builtinType(args)
	case "Taille":
		return builtinTaille(args)
	case "Longueur":
		return builtinLongueur(args)
	case "Extraire":
		return builtinExtraire(args)
	case "Gauche":
		return builtinTrim(args, false)
	case "Droite":
		return builtinTrim(args, true)
	case "Trouve":
		return builtinTrouve(args)
	case "Car":
		return builtinCar(args)
	case "CodeCar":
		return builtinCodeCar(args)
	case "Aléa":
		return values.NewFloat(rng.Float64()), nil
	case "Dormir":
		return nil, builtinDormir(args)
	case "TempsUnix":
		return values.NewInteger(time.Now().Unix()), nil
	case "Existe":
		return builtinExiste(args)
	case "Clefs":
		return it.builtinClefs(args)
	case "Valeurs":
		return it.builtinValeurs(args)
	case "FDF":
		return it.builtinFDF(args)
	}
	return nil, environment.New(environment.Fatal, "fonction interne non prise en charge : %s", n.Name)
}

func builtinType(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, environment.New(environment.InvalidParamCount, "Type(x) : un paramètre attendu")
	}
	return values.NewString(args[0].Type()), nil
}

func builtinTaille(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, environment.New(environment.InvalidParamCount, "Taille(x) : un paramètre attendu")
	}
	arr, ok := args[0].(*values.Array)
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "Taille(>T<) : Type Tableau attendu")
	}
	return arr.Size(), nil
}

func builtinLongueur(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, environment.New(environment.InvalidParamCount, "Longueur(x) : un paramètre attendu")
	}
	switch v := args[0].(type) {
	case *values.String:
		return values.NewInteger(int64(utf8.RuneCountInString(v.Value))), nil
	case *values.SizedChar:
		return values.NewInteger(int64(utf8.RuneCountInString(v.Value))), nil
	case *values.Array:
		return values.NewInteger(int64(v.Length())), nil
	case *values.Table:
		return values.NewInteger(int64(v.Len())), nil
	}
	return nil, environment.New(environment.TypeMismatch, "Longueur(>C|T<) : Type Chaîne ou Tableau attendu")
}

func textOf(v values.Value) (string, bool) {
	switch t := v.(type) {
	case *values.String:
		return t.Value, true
	case *values.SizedChar:
		return t.Value, true
	}
	return "", false
}

func intOf(v values.Value) (int64, bool) {
	iv, ok := v.(*values.Integer)
	if !ok || !iv.Defined {
		return 0, false
	}
	return iv.Value, true
}

// builtinExtraire implements `Extraire(chaîne, début, longueur)`, the 1-based
// substring extraction (grounded on the original's Mid.eval, which slices
// Python's 0-based exp[start-1:start-1+length]).
func builtinExtraire(args []values.Value) (values.Value, error) {
	if len(args) != 3 {
		return nil, environment.New(environment.InvalidParamCount, "Extraire(C,E,E) : trois paramètres attendus")
	}
	s, ok := textOf(args[0])
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "Extraire(>C<,E,E) : Type Chaîne attendu")
	}
	start, ok := intOf(args[1])
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "Extraire(C,>E<,E) : Type Entier attendu")
	}
	length, ok := intOf(args[2])
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "Extraire(C,E,>E<) : Type Entier attendu")
	}
	r := []rune(s)
	from := int(start) - 1
	to := from + int(length)
	if from < 0 {
		from = 0
	}
	if from > len(r) {
		from = len(r)
	}
	if to > len(r) {
		to = len(r)
	}
	if to < from {
		to = from
	}
	return values.NewString(string(r[from:to])), nil
}

// builtinTrim implements Gauche (right=false) / Droite (right=true).
func builtinTrim(args []values.Value, right bool) (values.Value, error) {
	name := "Gauche"
	if right {
		name = "Droite"
	}
	if len(args) != 2 {
		return nil, environment.New(environment.InvalidParamCount, "%s(C,E) : deux paramètres attendus", name)
	}
	s, ok := textOf(args[0])
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "%s(>C<,E) : Type Chaîne attendu", name)
	}
	n, ok := intOf(args[1])
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "%s(C,>E<) : Type Entier attendu", name)
	}
	r := []rune(s)
	if n < 0 {
		n = 0
	}
	if int(n) > len(r) {
		n = int64(len(r))
	}
	if !right {
		return values.NewString(string(r[:n])), nil
	}
	return values.NewString(string(r[len(r)-int(n):])), nil
}

// builtinTrouve implements `Trouve(C1, C2)`: 1-based index of C2 in C1, or 0
// when absent (grounded on Find.eval: `str1.find(str2) + 1`).
func builtinTrouve(args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, environment.New(environment.InvalidParamCount, "Trouve(C,C) : deux paramètres attendus")
	}
	s1, ok1 := textOf(args[0])
	s2, ok2 := textOf(args[1])
	if !ok1 || !ok2 {
		return nil, environment.New(environment.TypeMismatch, "Trouve(C,C) : Type Chaîne attendu")
	}
	r1 := []rune(s1)
	r2 := []rune(s2)
	for i := 0; i+len(r2) <= len(r1); i++ {
		if string(r1[i:i+len(r2)]) == s2 {
			return values.NewInteger(int64(i + 1)), nil
		}
	}
	return values.NewInteger(0), nil
}

func builtinCar(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, environment.New(environment.InvalidParamCount, "Car(E) : un paramètre attendu")
	}
	n, ok := intOf(args[0])
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "Car(>E<) : Type Entier attendu")
	}
	return values.NewString(string(rune(n))), nil
}

func builtinCodeCar(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, environment.New(environment.InvalidParamCount, "CodeCar(C) : un paramètre attendu")
	}
	s, ok := textOf(args[0])
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "CodeCar(>C<) : Type Chaîne attendu")
	}
	r := []rune(s)
	if len(r) != 1 {
		return nil, environment.New(environment.TypeMismatch, "CodeCar(>C<) : Chaîne de longueur 1 attendue")
	}
	return values.NewInteger(int64(r[0])), nil
}

func floatOf(v values.Value) (float64, bool) {
	switch t := v.(type) {
	case *values.Integer:
		return float64(t.Value), t.Defined
	case *values.Float:
		return t.Value, t.Defined
	}
	return 0, false
}

func builtinDormir(args []values.Value) error {
	if len(args) != 1 {
		return environment.New(environment.InvalidParamCount, "Dormir(E|N) : un paramètre attendu")
	}
	secs, ok := floatOf(args[0])
	if !ok {
		return environment.New(environment.TypeMismatch, "Dormir(>E|N<) : Type Entier ou Numérique attendu")
	}
	if secs < 0 {
		secs = 0
	}
	time.Sleep(time.Duration(secs * float64(time.Second)))
	return nil
}

func builtinExiste(args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, environment.New(environment.InvalidParamCount, "Existe(T,clef) : deux paramètres attendus")
	}
	t, ok := args[0].(*values.Table)
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "Existe(>T<,clef) : Type Table attendu")
	}
	return values.NewBoolean(t.Has(args[1])), nil
}

func (it *Interp) builtinClefs(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, environment.New(environment.InvalidParamCount, "Clefs(T) : un paramètre attendu")
	}
	t, ok := args[0].(*values.Table)
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "Clefs(>T<) : Type Table attendu")
	}
	return it.keysToArray(t.Keys(), t.KeyType), nil
}

func (it *Interp) builtinValeurs(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, environment.New(environment.InvalidParamCount, "Valeurs(T) : un paramètre attendu")
	}
	t, ok := args[0].(*values.Table)
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "Valeurs(>T<) : Type Table attendu")
	}
	return it.keysToArray(t.Vals(), t.ValueType), nil
}

func (it *Interp) keysToArray(vals []values.Value, et values.ElemType) values.Value {
	maxIdx := len(vals) - 1
	if maxIdx < 0 {
		maxIdx = -1
	}
	arr := values.NewArray(et, []int{maxIdx}, func() values.Value { return it.zeroValue(et) })
	for i, v := range vals {
		_ = arr.Set([]int{i}, v)
	}
	return arr
}

func (it *Interp) builtinFDF(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, environment.New(environment.InvalidParamCount, "FDF(canal) : un paramètre attendu")
	}
	ch, ok := intOf(args[0])
	if !ok {
		return nil, environment.New(environment.TypeMismatch, "FDF(>canal<) : Type Entier attendu")
	}
	eof, err := it.Files.EOF(int(ch))
	if err != nil {
		return nil, environment.New(environment.Fatal, "FDF : %v", err)
	}
	return values.NewBoolean(eof), nil
}
