package eval

import (
	"fmt"
	"io"
	"strings"

	"github.com/H2NCH2COOH/feng/pkg/env"
	"github.com/H2NCH2COOH/feng/pkg/lerr"
	"github.com/H2NCH2COOH/feng/pkg/printer"
	"github.com/H2NCH2COOH/feng/pkg/value"
)

// Handler implements one primitive operator. args has already been
// pre-evaluated or not, according to the matching table entry's
// PreEvaluate flag.
type Handler func(ev *Evaluator, frame *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error)

type primitiveDef struct {
	Name        string
	PreEvaluate bool
	Handler     Handler
}

// table lists every primitive name the root frame is seeded with. Each
// conceptual operator is implemented once; the evaluated and `!`
// variants share a Handler and differ only in PreEvaluate. Operators
// that always control their own evaluation (cond, assert, begin!,
// quote!) appear with a single name and PreEvaluate: false.
var table = []primitiveDef{
	{"puts", true, hPuts},
	{"puts!", false, hPuts},

	{"cond", false, hCond},
	{"not", true, hNot},
	{"assert", false, hAssert},

	{"eval", true, hEval},
	{"eval!", false, hEval},
	{"upeval", true, hUpeval},
	{"upeval!", false, hUpeval},

	{"define", true, hDefine},
	{"define!", false, hDefine},

	{"atom-concat", true, hAtomConcat},
	{"atom-concat!", false, hAtomConcat},
	{"atom-eq?", true, hAtomEq},
	{"atom-eq?!", false, hAtomEq},
	{"atom?", true, hPredicate(value.IsAtom)},
	{"atom?!", false, hPredicate(value.IsAtom)},
	{"list?", true, hPredicate(value.IsList)},
	{"list?!", false, hPredicate(value.IsList)},
	{"fexpr?", true, hPredicate(value.IsFexpr)},
	{"fexpr?!", false, hPredicate(value.IsFexpr)},

	{"begin!", false, hBeginBang},
	{"quote!", false, hQuoteBang},
	{"list", true, hList},

	{"fexpr", true, hFexpr},
	{"fexpr!", false, hFexpr},

	{"car", true, hCar},
	{"car!", false, hCar},
	{"cdr", true, hCdr},
	{"cdr!", false, hCdr},
	{"cons", true, hCons},
	{"cons!", false, hCons},
}

var registry map[string]primitiveDef

func init() {
	registry = make(map[string]primitiveDef, len(table))
	for _, d := range table {
		registry[d.Name] = d
	}
}

func hPuts(ev *Evaluator, _ *env.Frame, _ lerr.Location, _ bool, args []value.Value) (value.Value, error) {
	for _, a := range args {
		if err := printer.Fprint(ev.out, a); err != nil {
			return nil, lerr.IO(err)
		}
		if _, err := io.WriteString(ev.out, "\n"); err != nil {
			return nil, lerr.IO(err)
		}
	}
	return value.Empty, nil
}

func hCond(ev *Evaluator, frame *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args)%2 != 0 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "cond requires an even number of arguments")
	}
	for i := 0; i < len(args); i += 2 {
		test, err := ev.Eval(frame, args[i])
		if err != nil {
			return nil, err
		}
		if value.IsTruthy(test) {
			return ev.Eval(frame, args[i+1])
		}
	}
	return value.Empty, nil
}

func hNot(_ *Evaluator, _ *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "not expects exactly 1 argument")
	}
	if value.IsTruthy(args[0]) {
		return value.Empty, nil
	}
	return value.True, nil
}

func hAssert(ev *Evaluator, frame *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	for i, a := range args {
		v, err := ev.Eval(frame, a)
		if err != nil {
			return nil, err
		}
		if !value.IsTruthy(v) {
			msg := fmt.Sprintf("argument %d (%s) was falsy", i, printer.Sprint(a))
			return nil, lerr.AssertError(loc, hasLoc, msg)
		}
	}
	return value.Empty, nil
}

func hEval(ev *Evaluator, frame *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "eval expects exactly 1 argument")
	}
	child := env.NewChild(frame, false)
	return ev.Eval(child, args[0])
}

func hUpeval(ev *Evaluator, frame *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "upeval expects exactly 1 argument")
	}
	target, err := env.UpevalTarget(frame)
	if err != nil {
		return nil, lerr.NoUpCtx(loc, hasLoc)
	}
	child := env.NewChild(target, true)
	return ev.Eval(child, args[0])
}

func hDefine(_ *Evaluator, frame *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "define expects exactly 2 arguments")
	}
	name, ok := value.AtomName(args[0])
	if !ok {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "first argument to define must be an atom")
	}
	if err := frame.Define(name, args[1]); err != nil {
		if redef, ok := err.(*env.ErrRedefinition); ok {
			return nil, lerr.Redefinition(loc, hasLoc, redef.Name, printer.Sprint(redef.Old), printer.Sprint(redef.New))
		}
		return nil, err
	}
	return value.Empty, nil
}

func hAtomConcat(_ *Evaluator, _ *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) < 1 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "atom-concat requires at least 1 argument")
	}
	var b strings.Builder
	for _, a := range args {
		name, ok := value.AtomName(a)
		if !ok {
			return nil, lerr.BadFuncArgs(loc, hasLoc, "atom-concat arguments must be atoms")
		}
		b.WriteString(name)
	}
	return value.NewAtom(b.String()), nil
}

func hAtomEq(_ *Evaluator, _ *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) < 1 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "atom-eq? requires at least 1 argument")
	}
	first, ok := value.AtomName(args[0])
	if !ok {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "atom-eq? arguments must be atoms")
	}
	for _, a := range args[1:] {
		name, ok := value.AtomName(a)
		if !ok {
			return nil, lerr.BadFuncArgs(loc, hasLoc, "atom-eq? arguments must be atoms")
		}
		if name != first {
			return value.Empty, nil
		}
	}
	return value.True, nil
}

// hPredicate builds the shared handler for atom?/list?/fexpr? (and
// their `!` variants): true iff every argument matches pred, true on no
// arguments.
func hPredicate(pred func(value.Value) bool) Handler {
	return func(_ *Evaluator, _ *env.Frame, _ lerr.Location, _ bool, args []value.Value) (value.Value, error) {
		for _, a := range args {
			if !pred(a) {
				return value.Empty, nil
			}
		}
		return value.True, nil
	}
}

func hBeginBang(ev *Evaluator, frame *env.Frame, _ lerr.Location, _ bool, args []value.Value) (value.Value, error) {
	child := env.NewChild(frame, false)
	var result value.Value = value.Empty
	for _, a := range args {
		r, err := ev.Eval(child, a)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

func hQuoteBang(_ *Evaluator, _ *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "quote! expects exactly 1 argument")
	}
	return args[0], nil
}

func hList(_ *Evaluator, _ *env.Frame, _ lerr.Location, _ bool, args []value.Value) (value.Value, error) {
	return value.FromElements(args), nil
}

func hFexpr(_ *Evaluator, _ *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "fexpr expects exactly 2 arguments")
	}
	params, err := parseArgList(args[0], loc, hasLoc)
	if err != nil {
		return nil, err
	}
	bodyElems, ok := value.Elements(args[1])
	if !ok {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "fexpr body must be a list")
	}
	return &value.Fexpr{Params: params, Body: bodyElems}, nil
}

func parseArgList(v value.Value, loc lerr.Location, hasLoc bool) (value.ArgList, error) {
	if name, ok := value.AtomName(v); ok {
		return value.ArgList{Kind: value.Vargs, Name: name}, nil
	}
	elems, ok := value.Elements(v)
	if !ok {
		return value.ArgList{}, lerr.BadFuncArgs(loc, hasLoc, "fexpr parameter declaration must be an atom or a list of atoms")
	}
	names := make([]string, len(elems))
	for i, e := range elems {
		n, ok := value.AtomName(e)
		if !ok {
			return value.ArgList{}, lerr.BadFuncArgs(loc, hasLoc, "fexpr parameter list must contain only atoms")
		}
		names[i] = n
	}
	return value.ArgList{Kind: value.Args, Names: names}, nil
}

func hCar(_ *Evaluator, _ *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "car expects exactly 1 argument")
	}
	elems, ok := value.Elements(args[0])
	if !ok {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "car expects a list argument")
	}
	if len(elems) == 0 {
		return value.Empty, nil
	}
	return elems[0], nil
}

func hCdr(_ *Evaluator, _ *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "cdr expects exactly 1 argument")
	}
	elems, ok := value.Elements(args[0])
	if !ok {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "cdr expects a list argument")
	}
	if len(elems) <= 1 {
		return value.Empty, nil
	}
	return value.FromElements(elems[1:]), nil
}

func hCons(_ *Evaluator, _ *env.Frame, loc lerr.Location, hasLoc bool, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "cons expects exactly 2 arguments")
	}
	elems, ok := value.Elements(args[1])
	if !ok {
		return nil, lerr.BadFuncArgs(loc, hasLoc, "cons expects a list as its second argument")
	}
	newElems := make([]value.Value, 0, len(elems)+1)
	newElems = append(newElems, args[0])
	newElems = append(newElems, elems...)
	return value.FromElements(newElems), nil
}
