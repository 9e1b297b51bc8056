package interp

import (
	"github.com/teegre/fralgo-go/internal/environment"
	"github.com/teegre/fralgo-go/internal/values"
)

// asBoolean requires v to be a defined Booléen (spec §4.3 If/While: "must
// be boolean-coercible").
func asBoolean(v values.Value) (bool, error) {
	b, ok := v.(*values.Boolean)
	if !ok {
		return false, environment.New(environment.TypeMismatch, "Booléen attendu, %s fourni", v.Type())
	}
	return b.Defined && b.Value, nil
}

// asInteger requires v to be a defined Entier (For loop bounds/step).
func asInteger(v values.Value) (int64, error) {
	iv, ok := v.(*values.Integer)
	if !ok || !iv.Defined {
		return 0, environment.New(environment.TypeMismatch, "Entier attendu, %s fourni", v.Type())
	}
	return iv.Value, nil
}
