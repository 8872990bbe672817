// Package env implements the environment model: a linked stack of
// frames, each holding a strong map and a weak map from name to value,
// with an optional parent and an is_upeval flag.
package env

import (
	"errors"

	"github.com/H2NCH2COOH/feng/pkg/value"
)

// ErrRedefinition is returned by Define when name already has a strong
// binding in the current frame. Old holds the existing value.
type ErrRedefinition struct {
	Name string
	Old  value.Value
	New  value.Value
}

func (e *ErrRedefinition) Error() string {
	return "redefinition of " + e.Name
}

// ErrNoUpCtx is returned by UpevalTarget when the frame chain has no
// further non-upeval ancestor.
var ErrNoUpCtx = errors.New("no enclosing non-upeval frame")

// Frame is one level of the lexical scope chain.
type Frame struct {
	strong   map[string]value.Value
	weak     map[string]value.Value
	parent   *Frame
	isUpeval bool
}

// NewRoot creates the top-level frame, with no parent.
func NewRoot() *Frame {
	return &Frame{
		strong: make(map[string]value.Value),
		weak:   make(map[string]value.Value),
	}
}

// NewChild creates a frame whose parent is parent.
func NewChild(parent *Frame, isUpeval bool) *Frame {
	return &Frame{
		strong:   make(map[string]value.Value),
		weak:     make(map[string]value.Value),
		parent:   parent,
		isUpeval: isUpeval,
	}
}

// Parent returns f's parent frame, or nil at the root.
func (f *Frame) Parent() *Frame { return f.parent }

// IsUpeval reports whether f was created by an upeval.
func (f *Frame) IsUpeval() bool { return f.isUpeval }

// Define inserts name into f's strong map. It fails with
// *ErrRedefinition if name already has a strong binding in f; weak
// bindings never block it.
func (f *Frame) Define(name string, v value.Value) error {
	if old, ok := f.strong[name]; ok {
		return &ErrRedefinition{Name: name, Old: old, New: v}
	}
	f.strong[name] = v
	return nil
}

// DefineWeak inserts name into f's weak map, silently overwriting any
// existing weak binding. Used to seed primitives/constants into the
// root frame and to bind fexpr parameters on call entry.
func (f *Frame) DefineWeak(name string, v value.Value) {
	f.weak[name] = v
}

// Lookup searches the current frame's strong map, then its weak map,
// then its parent, in order. A name found nowhere in the chain
// evaluates to the atom itself (free symbols are self-evaluating).
func (f *Frame) Lookup(name string) value.Value {
	if v, ok := f.strong[name]; ok {
		return v
	}
	if v, ok := f.weak[name]; ok {
		return v
	}
	if f.parent != nil {
		return f.parent.Lookup(name)
	}
	return value.NewAtom(name)
}

// UpevalTarget skips all consecutive ancestors of f (starting at f
// itself) whose is_upeval flag is set, then takes the next parent.
// Fails with ErrNoUpCtx if the chain is exhausted before such a parent
// exists.
func UpevalTarget(f *Frame) (*Frame, error) {
	cur := f
	for cur != nil && cur.isUpeval {
		cur = cur.parent
	}
	if cur == nil || cur.parent == nil {
		return nil, ErrNoUpCtx
	}
	return cur.parent, nil
}
