package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTruthiness(t *testing.T) {
	require.False(t, IsTruthy(Empty))
	require.True(t, IsTruthy(NewAtom("anything")))
	require.True(t, IsTruthy(True))
	require.True(t, IsTruthy(Cons(NewAtom("x"), Empty)))
}

func TestListConsCarCdr(t *testing.T) {
	x := NewAtom("x")
	l := Cons(x, Empty)

	require.Same(t, Value(x), l.Head())
	require.True(t, l.Tail().IsEmpty())
	require.Equal(t, Value(Empty), Empty.Head())
	require.True(t, Empty.Tail().IsEmpty())
}

func TestElementsRoundTrip(t *testing.T) {
	elems := []Value{NewAtom("a"), NewAtom("b"), NewAtom("c")}
	l := FromElements(elems)

	got, ok := Elements(l)
	require.True(t, ok)
	if diff := cmp.Diff(elems, got); diff != "" {
		t.Fatalf("Elements(FromElements(elems)) mismatch (-want +got):\n%s", diff)
	}
}

func TestElementsOnSourceList(t *testing.T) {
	sl := &SourceList{Children: []Value{NewAtom("a"), NewAtom("b")}}
	got, ok := Elements(sl)
	require.True(t, ok)
	require.Len(t, got, 2)
}

func TestElementsOnNonList(t *testing.T) {
	_, ok := Elements(NewAtom("a"))
	require.False(t, ok)
}

func TestIsEmptyList(t *testing.T) {
	require.True(t, IsEmptyList(Empty))
	require.True(t, IsEmptyList(&SourceList{}))
	require.False(t, IsEmptyList(&SourceList{Children: []Value{NewAtom("x")}}))
	require.False(t, IsEmptyList(NewAtom("x")))
}

func TestAtomNameWorksOnBothVariants(t *testing.T) {
	name, ok := AtomName(NewAtom("foo"))
	require.True(t, ok)
	require.Equal(t, "foo", name)

	name, ok = AtomName(&SourceAtom{Name: "bar"})
	require.True(t, ok)
	require.Equal(t, "bar", name)

	_, ok = AtomName(Empty)
	require.False(t, ok)
}

func TestPredicates(t *testing.T) {
	require.True(t, IsAtom(NewAtom("a")))
	require.True(t, IsAtom(&SourceAtom{Name: "a"}))
	require.False(t, IsAtom(Empty))

	require.True(t, IsList(Empty))
	require.True(t, IsList(&SourceList{}))
	require.False(t, IsList(NewAtom("a")))

	require.True(t, IsFexpr(&Fexpr{}))
	require.False(t, IsFexpr(Empty))
}
