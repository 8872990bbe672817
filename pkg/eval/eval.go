// Package eval implements the tree-walking evaluator: ordinary
// evaluation, upward evaluation (upeval), fexpr invocation, and
// dispatch to the fixed set of primitive operators.
package eval

import (
	"io"
	"log"
	"os"

	"github.com/H2NCH2COOH/feng/pkg/env"
	"github.com/H2NCH2COOH/feng/pkg/lerr"
	"github.com/H2NCH2COOH/feng/pkg/printer"
	"github.com/H2NCH2COOH/feng/pkg/value"
)

// LogLevel defines the verbosity of the evaluator's diagnostic tracing.
type LogLevel int

const (
	LogLevelSilent LogLevel = iota // No logging
	LogLevelError                  // Errors only
	LogLevelWarn                   // Warnings and errors
	LogLevelInfo                   // Informational messages
	LogLevelDebug                  // Verbose call/frame tracing
)

// Config configures an Evaluator. Every field is optional; zero values
// are defaulted inside NewEvaluator.
type Config struct {
	// Out is the sink for `puts`/`puts!` output. Defaults to os.Stdout.
	Out io.Writer

	// Logger receives diagnostic trace lines. Defaults to a logger
	// that discards everything.
	Logger *log.Logger

	// LogLevel controls verbosity (default: LogLevelSilent).
	LogLevel LogLevel
}

// Evaluator holds the configuration needed to run a program; it carries
// no per-run state, so one Evaluator can run many programs.
type Evaluator struct {
	out    io.Writer
	logger *log.Logger
	level  LogLevel
}

// NewEvaluator builds an Evaluator from cfg, which may be nil.
func NewEvaluator(cfg *Config) *Evaluator {
	out := io.Writer(os.Stdout)
	logger := log.New(io.Discard, "[feng] ", log.LstdFlags)
	level := LogLevelSilent

	if cfg != nil {
		if cfg.Out != nil {
			out = cfg.Out
		}
		if cfg.Logger != nil {
			logger = cfg.Logger
		}
		level = cfg.LogLevel
	}

	return &Evaluator{out: out, logger: logger, level: level}
}

func (ev *Evaluator) debugf(format string, args ...any) {
	if ev.level >= LogLevelDebug {
		ev.logger.Printf(format, args...)
	}
}

// EvalProgram evaluates each top-level form of prog in order in a fresh
// root frame, seeded with the primitive table and the SPACE/LPAR/RPAR
// constants. The result is the value of the last form, or the empty
// list if prog is empty.
func (ev *Evaluator) EvalProgram(prog []value.Value) (value.Value, error) {
	root := env.NewRoot()
	seedRoot(root)

	var result value.Value = value.Empty
	for _, form := range prog {
		r, err := ev.Eval(root, form)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

// Eval evaluates v in frame.
func (ev *Evaluator) Eval(frame *env.Frame, v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case *value.Atom:
		return frame.Lookup(x.Name), nil
	case *value.SourceAtom:
		return frame.Lookup(x.Name), nil
	case *value.List:
		return ev.evalList(frame, v, lerr.Location{}, false)
	case *value.SourceList:
		return ev.evalList(frame, v, x.Loc, true)
	default:
		loc, hasLoc := value.LocationOf(v)
		return nil, lerr.CantEval(loc, hasLoc, printer.Sprint(v))
	}
}

// evalList implements a call: resolve the head, then dispatch to a
// fexpr or a primitive. listVal is a *value.List or *value.SourceList;
// loc/hasLoc are its location, when known.
func (ev *Evaluator) evalList(frame *env.Frame, listVal value.Value, loc lerr.Location, hasLoc bool) (value.Value, error) {
	elems, _ := value.Elements(listVal)
	if len(elems) == 0 {
		return value.Empty, nil
	}

	callee := elems[0]
	tail := elems[1:]

	// Atoms resolve via lookup; anything else is evaluated through the
	// general rule, which recurses into this function again for a
	// nested call. This is what makes a fexpr expression in head
	// position (e.g. `((fexpr! () ()) 1)`) callable.
	resolved, err := ev.Eval(frame, callee)
	if err != nil {
		return nil, err
	}

	switch fn := resolved.(type) {
	case *value.Fexpr:
		ev.debugf("call fexpr at %s with %d argument(s)", loc, len(tail))
		return ev.invokeFexpr(fn, tail, frame, loc, hasLoc)
	case *value.Function:
		ev.debugf("call primitive %s at %s with %d argument(s)", fn.Name, loc, len(tail))
		return ev.invokePrimitive(fn, frame, loc, hasLoc, tail)
	default:
		return nil, lerr.CantCall(loc, hasLoc, printer.Sprint(resolved))
	}
}

// invokeFexpr binds a fexpr's parameters to its (unevaluated) argument
// list in a fresh call frame and evaluates its body there in order.
func (ev *Evaluator) invokeFexpr(fn *value.Fexpr, args []value.Value, parent *env.Frame, loc lerr.Location, hasLoc bool) (value.Value, error) {
	callFrame := env.NewChild(parent, false)

	switch fn.Params.Kind {
	case value.Vargs:
		callFrame.DefineWeak(fn.Params.Name, value.FromElements(args))
	case value.Args:
		if len(args) != len(fn.Params.Names) {
			return nil, lerr.BadArgsNum(loc, hasLoc, len(fn.Params.Names), len(args))
		}
		for i, name := range fn.Params.Names {
			callFrame.DefineWeak(name, args[i])
		}
	}

	var result value.Value = value.Empty
	for _, form := range fn.Body {
		r, err := ev.Eval(callFrame, form)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

// invokePrimitive dispatches to a primitive's handler, pre-evaluating
// the tail when the matched table entry calls for it and otherwise
// handing the raw tail to the shared handler.
func (ev *Evaluator) invokePrimitive(fn *value.Function, frame *env.Frame, loc lerr.Location, hasLoc bool, rawTail []value.Value) (value.Value, error) {
	def, ok := registry[fn.Name]
	if !ok {
		return nil, lerr.CantCall(loc, hasLoc, printer.Sprint(fn))
	}

	args := rawTail
	if def.PreEvaluate {
		args = make([]value.Value, len(rawTail))
		for i, a := range rawTail {
			r, err := ev.Eval(frame, a)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
	}

	return def.Handler(ev, frame, loc, hasLoc, args)
}

func seedRoot(f *env.Frame) {
	for _, def := range table {
		f.DefineWeak(def.Name, &value.Function{Name: def.Name})
	}
	f.DefineWeak("SPACE", value.NewAtom(" "))
	f.DefineWeak("LPAR", value.NewAtom("("))
	f.DefineWeak("RPAR", value.NewAtom(")"))
}
