package values

// Equal implements the Algo `=`/`<>` operator for matching variant pairs
// (spec §4.3 BinOp: "Comparisons work on matching variant pairs").
func Equal(a, b Value) (bool, error) {
	switch x := a.(type) {
	case *Boolean:
		y, ok := b.(*Boolean)
		if !ok {
			return false, NewTypeMismatch(a.Type(), b.Type())
		}
		return x.Value == y.Value, nil
	case *Integer:
		switch y := b.(type) {
		case *Integer:
			return x.Value == y.Value, nil
		case *Float:
			return float64(x.Value) == y.Value, nil
		}
		return false, NewTypeMismatch(a.Type(), b.Type())
	case *Float:
		switch y := b.(type) {
		case *Float:
			return x.Value == y.Value, nil
		case *Integer:
			return x.Value == float64(y.Value), nil
		}
		return false, NewTypeMismatch(a.Type(), b.Type())
	case *String:
		y, ok := b.(*String)
		if !ok {
			return false, NewTypeMismatch(a.Type(), b.Type())
		}
		return x.Value == y.Value, nil
	case *SizedChar:
		switch y := b.(type) {
		case *SizedChar:
			return x.Value == y.Value, nil
		case *String:
			return x.Value == y.Value, nil
		}
		return false, NewTypeMismatch(a.Type(), b.Type())
	case *Array:
		y, ok := b.(*Array)
		if !ok {
			return false, NewTypeMismatch(a.Type(), b.Type())
		}
		if len(x.Data) != len(y.Data) {
			return false, nil
		}
		for i := range x.Data {
			eq, err := Equal(x.Data[i], y.Data[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case *RecordValue:
		y, ok := b.(*RecordValue)
		if !ok || x.Def.Name != y.Def.Name {
			return false, NewTypeMismatch(a.Type(), b.Type())
		}
		for i := range x.Values {
			eq, err := Equal(x.Values[i], y.Values[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case Nothing:
		_, ok := b.(Nothing)
		return ok, nil
	}
	return false, NewTypeMismatch(a.Type(), b.Type())
}

// Compare implements the Algo `< > <= >=` operators, returning -1, 0, or 1.
func Compare(a, b Value) (int, error) {
	switch x := a.(type) {
	case *Integer:
		switch y := b.(type) {
		case *Integer:
			return cmpInt64(x.Value, y.Value), nil
		case *Float:
			return cmpFloat64(float64(x.Value), y.Value), nil
		}
	case *Float:
		switch y := b.(type) {
		case *Float:
			return cmpFloat64(x.Value, y.Value), nil
		case *Integer:
			return cmpFloat64(x.Value, float64(y.Value)), nil
		}
	case *String:
		if y, ok := b.(*String); ok {
			return cmpString(x.Value, y.Value), nil
		}
	case *SizedChar:
		if y, ok := b.(*SizedChar); ok {
			return cmpString(x.Value, y.Value), nil
		}
	case *Boolean:
		if y, ok := b.(*Boolean); ok {
			return cmpBool(x.Value, y.Value), nil
		}
	}
	return 0, NewTypeMismatch(a.Type(), b.Type())
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
func cmpBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}
