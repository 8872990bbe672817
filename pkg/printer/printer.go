// Package printer implements the canonical textual form used by the
// `puts` primitive and by the CLI's final result line. It is idempotent
// with the parser for atoms containing no whitespace, parentheses or
// backslashes.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/H2NCH2COOH/feng/pkg/value"
)

// Fprint writes v's canonical textual form to w.
func Fprint(w io.Writer, v value.Value) error {
	_, err := io.WriteString(w, Sprint(v))
	return err
}

// Sprint renders v's canonical textual form as a string.
func Sprint(v value.Value) string {
	var b strings.Builder
	write(&b, v)
	return b.String()
}

func write(b *strings.Builder, v value.Value) {
	switch x := v.(type) {
	case *value.Atom:
		b.WriteString(x.Name)
	case *value.SourceAtom:
		b.WriteString(x.Name)
	case *value.List:
		writeElements(b, collectRuntime(x))
	case *value.SourceList:
		writeElements(b, x.Children)
	case *value.Fexpr:
		writeFexpr(b, x)
	case *value.Function:
		b.WriteString(x.Name)
	default:
		b.WriteString("?")
	}
}

func collectRuntime(l *value.List) []value.Value {
	elems, _ := value.Elements(l)
	return elems
}

func writeElements(b *strings.Builder, elems []value.Value) {
	b.WriteByte('(')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		write(b, e)
	}
	b.WriteByte(')')
}

func writeFexpr(b *strings.Builder, f *value.Fexpr) {
	b.WriteString("(fexpr! ")
	switch f.Params.Kind {
	case value.Vargs:
		b.WriteString(f.Params.Name)
	case value.Args:
		b.WriteByte('(')
		for i, n := range f.Params.Names {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(n)
		}
		b.WriteByte(')')
	}
	b.WriteByte(' ')
	writeElements(b, f.Body)
	b.WriteByte(')')
}

// Quoted renders v the way error messages quote values/names, using a
// backtick/apostrophe convention reserved for error text; normal
// printing never decorates a value this way.
func Quoted(v value.Value) string {
	return fmt.Sprintf("`%s'", Sprint(v))
}
