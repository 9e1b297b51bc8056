package values

import "testing"

func newIntArray(maxIndex ...int) *Array {
	return NewArray(ElemType{Kind: "Entier"}, maxIndex, func() Value { return UndefinedInteger() })
}

func TestArray_SizeOneDimension(t *testing.T) {
	a := newIntArray(2)
	if s := a.Size().(*Integer).Value; s != 3 {
		t.Errorf("Taille = %d, want 3", s)
	}
}

func TestArray_SizeMultiDimension(t *testing.T) {
	a := newIntArray(1, 2)
	sizes := a.Size().(*Array)
	if sizes.Length() == 0 {
		// Length counts assigned elements; both entries are always assigned here.
	}
	v0, _ := sizes.Get([]int{0})
	v1, _ := sizes.Get([]int{1})
	if v0.(*Integer).Value != 2 || v1.(*Integer).Value != 3 {
		t.Errorf("got (%v,%v), want (2,3)", v0, v1)
	}
}

func TestArray_ResizeNoOpOnSameDimensions(t *testing.T) {
	a := newIntArray(2)
	a.Set([]int{1}, NewInteger(9))
	if err := a.Resize([]int{2}); err != nil {
		t.Fatal(err)
	}
	v, _ := a.Get([]int{1})
	if v.(*Integer).Value != 9 {
		t.Errorf("resize to same size lost data: got %v", v)
	}
}

func TestArray_ResizePreservesOverlap(t *testing.T) {
	a := newIntArray(3)
	for i := 0; i <= 3; i++ {
		a.Set([]int{i}, NewInteger(int64(i)))
	}
	if err := a.Resize([]int{1}); err != nil {
		t.Fatal(err)
	}
	v, _ := a.Get([]int{1})
	if v.(*Integer).Value != 1 {
		t.Errorf("got %v, want 1", v)
	}
}

func TestArray_ResizeNegativeFails(t *testing.T) {
	a := newIntArray(2)
	if err := a.Resize([]int{-1}); err != ErrResizeFailed {
		t.Errorf("expected ErrResizeFailed, got %v", err)
	}
}

func TestArray_GetOutOfRange(t *testing.T) {
	a := newIntArray(2)
	if _, err := a.Get([]int{3}); err != ErrIndexOutOfRange {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestArray_LengthCountsAssignedOnly(t *testing.T) {
	a := newIntArray(2)
	a.Set([]int{0}, NewInteger(1))
	a.Set([]int{1}, NewInteger(2))
	if l := a.Length(); l != 2 {
		t.Errorf("Longueur = %d, want 2", l)
	}
}

func TestArray_UndimensionedRedimAllocatesLazily(t *testing.T) {
	a := NewArray(ElemType{Kind: "Chaîne"}, []int{-1}, func() Value { return UndefinedString() })
	if !a.Undimensioned() {
		t.Fatal("expected undimensioned")
	}
	if err := a.Resize([]int{0}); err != nil {
		t.Fatal(err)
	}
	if err := a.Set([]int{0}, NewString("X")); err != nil {
		t.Fatal(err)
	}
	if l := a.Length(); l != 1 {
		t.Errorf("Longueur = %d, want 1", l)
	}
}

func TestSizedChar_PadsAndTruncates(t *testing.T) {
	c := NewSizedChar("ab", 5)
	if c.String() != "ab   " {
		t.Errorf("got %q", c.String())
	}
	c.Set("abcdefgh")
	if c.String() != "abcde" {
		t.Errorf("got %q", c.String())
	}
}
