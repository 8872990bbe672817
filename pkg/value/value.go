// Package value implements both the parser's source-value model and the
// evaluator's runtime-value model. The two are largely the same
// representation, so they live in one sum type rather than two.
package value

import (
	"github.com/H2NCH2COOH/feng/pkg/lerr"
)

// Value is the tagged union over every runtime/source value variant:
// *Atom, *List, *SourceAtom, *SourceList, *Fexpr, *Function.
type Value interface {
	isValue()
}

// Atom is an immutable, shareable name with no location. Equality is by
// name only.
type Atom struct {
	Name string
}

func (*Atom) isValue() {}

// NewAtom builds a runtime atom.
func NewAtom(name string) *Atom { return &Atom{Name: name} }

// True is the canonical true literal, the atom named "true".
var True = NewAtom("true")

// List is a persistent singly linked list: either empty or a cons of a
// head value and a tail list. Never mutated after construction.
type List struct {
	empty bool
	head  Value
	tail  *List
}

func (*List) isValue() {}

// Empty is the canonical empty list value.
var Empty = &List{empty: true}

// Cons prepends head to tail, producing a new list; tail is never
// mutated.
func Cons(head Value, tail *List) *List {
	return &List{head: head, tail: tail}
}

// IsEmpty reports whether l is the empty list.
func (l *List) IsEmpty() bool { return l.empty }

// Head returns the list's head, or Empty if the list is empty.
func (l *List) Head() Value {
	if l.empty {
		return Empty
	}
	return l.head
}

// Tail returns the list's tail, or Empty if the list is empty.
func (l *List) Tail() *List {
	if l.empty {
		return Empty
	}
	return l.tail
}

// SourceAtom is an atom produced by the parser, carrying the location of
// its first character. Semantically interchangeable with an Atom of the
// same name, and printed the same way; the location is metadata only.
type SourceAtom struct {
	Name string
	Loc  lerr.Location
}

func (*SourceAtom) isValue() {}

// SourceList is a list produced by the parser, carrying the location of
// its opening paren plus an immutable ordered array of child source
// values. Semantically a list whose head is Children[0] and whose tail
// is Children[1:].
type SourceList struct {
	Children []Value
	Loc      lerr.Location
}

func (*SourceList) isValue() {}

// ArgKind distinguishes the two fexpr parameter-declaration shapes.
type ArgKind int

const (
	// Vargs binds the entire unevaluated argument list to one name.
	Vargs ArgKind = iota
	// Args binds positionally, with an arity check.
	Args
)

// ArgList is a fexpr's parameter declaration.
type ArgList struct {
	Kind  ArgKind
	Name  string   // Vargs
	Names []string // Args
}

// Fexpr is a user-defined operator whose parameters are not evaluated
// before binding; the body decides. Body is materialized once, at
// construction time, from the second `fexpr`/`fexpr!` argument.
type Fexpr struct {
	Params ArgList
	Body   []Value
}

func (*Fexpr) isValue() {}

// Function is a tag selecting one of the fixed primitive operators by
// name.
type Function struct {
	Name string
}

func (*Function) isValue() {}

// IsTruthy implements the single truthiness predicate: every value
// other than the empty list is true.
func IsTruthy(v Value) bool {
	return !IsEmptyList(v)
}

// IsEmptyList reports whether v denotes the empty list, whether it is a
// runtime List or a parsed SourceList with no children.
func IsEmptyList(v Value) bool {
	switch x := v.(type) {
	case *List:
		return x.IsEmpty()
	case *SourceList:
		return len(x.Children) == 0
	default:
		return false
	}
}

// IsAtom reports whether v is an Atom or SourceAtom.
func IsAtom(v Value) bool {
	switch v.(type) {
	case *Atom, *SourceAtom:
		return true
	default:
		return false
	}
}

// IsList reports whether v is a List or SourceList (empty or not).
func IsList(v Value) bool {
	switch v.(type) {
	case *List, *SourceList:
		return true
	default:
		return false
	}
}

// IsFexpr reports whether v is a Fexpr.
func IsFexpr(v Value) bool {
	_, ok := v.(*Fexpr)
	return ok
}

// AtomName returns the name of v if it is an Atom or SourceAtom.
func AtomName(v Value) (string, bool) {
	switch x := v.(type) {
	case *Atom:
		return x.Name, true
	case *SourceAtom:
		return x.Name, true
	default:
		return "", false
	}
}

// LocationOf returns the location carried by a SourceAtom or SourceList.
func LocationOf(v Value) (lerr.Location, bool) {
	switch x := v.(type) {
	case *SourceAtom:
		return x.Loc, true
	case *SourceList:
		return x.Loc, true
	default:
		return lerr.Location{}, false
	}
}

// Elements flattens any list-shaped value (List or SourceList) into a
// slice of its elements, in order. ok is false for non-list values.
func Elements(v Value) (elems []Value, ok bool) {
	switch x := v.(type) {
	case *List:
		for cur := x; !cur.IsEmpty(); cur = cur.Tail() {
			elems = append(elems, cur.Head())
		}
		return elems, true
	case *SourceList:
		return append([]Value(nil), x.Children...), true
	default:
		return nil, false
	}
}

// FromElements builds a fresh runtime List out of elems, in order.
func FromElements(elems []Value) *List {
	result := Empty
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}
