// Package feng provides the library façade: Parse, EvalProgram, and
// Print. It wires together pkg/parser, pkg/eval, and pkg/printer.
package feng

import (
	"bufio"
	"io"

	"github.com/H2NCH2COOH/feng/pkg/eval"
	"github.com/H2NCH2COOH/feng/pkg/parser"
	"github.com/H2NCH2COOH/feng/pkg/printer"
	"github.com/H2NCH2COOH/feng/pkg/value"
)

// Program is the parser's output: a flat, ordered sequence of top-level
// source values.
type Program = []value.Value

// Value is the runtime/source value sum type shared by every stage.
type Value = value.Value

// Parse reads r as a full program, attaching name to every location it
// produces.
func Parse(name string, r io.Reader) (Program, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return parser.Parse(name, br)
}

// EvalProgram evaluates each top-level form of prog in order in a fresh
// root frame, using a default Evaluator (puts writes to os.Stdout,
// logging disabled). The result is the value of the last form, or the
// empty list if prog is empty.
func EvalProgram(prog Program) (Value, error) {
	return eval.NewEvaluator(nil).EvalProgram(prog)
}

// NewEvaluator builds an Evaluator from cfg (which may be nil for
// defaults), for callers that need control over the `puts` sink or
// diagnostic logging.
func NewEvaluator(cfg *eval.Config) *eval.Evaluator {
	return eval.NewEvaluator(cfg)
}

// Print writes v's canonical textual form to sink.
func Print(sink io.Writer, v Value) error {
	return printer.Fprint(sink, v)
}
