package trace

import (
	"iter"
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tapebf/interpreter"
)

// Names available to a watch expression.
var _watch_names = map[string]string{
	"pos":   "cursor position",
	"cell":  "value of the cell under the cursor",
	"ticks": "instructions and loop passes executed",
	"last":  "last +, -, > or < executed, or None",
	"tape":  "tuple of all cell values",
}

// WatchNames returns the names a watch expression may use, with a short
// description of each.
func WatchNames() iter.Seq2[string, string] {
	return maps.All(_watch_names)
}

// Watch is a compiled boolean Starlark expression over interpreter state.
type Watch struct {
	Expr string

	program *starlark.Program
}

// NewWatch compiles expr.
func NewWatch(expr string) (watch *Watch, err error) {
	opts := syntax.FileOptions{}
	src := "rc=" + expr + "\n"
	isPredeclared := func(name string) bool {
		_, ok := _watch_names[name]
		return ok
	}

	_, program, err := starlark.SourceProgramOptions(&opts, "watch", src, isPredeclared)
	if err != nil {
		err = &ErrWatch{Expr: expr, Err: err}
		return
	}

	watch = &Watch{
		Expr:    expr,
		program: program,
	}
	return
}

// Match evaluates the expression against state and returns its truth.
func (w *Watch) Match(state interpreter.State) (ok bool, err error) {
	thread := starlark.Thread{Name: "watch"}

	var last starlark.Value = starlark.None
	if _, symbol, found := state.Last(); found {
		last = starlark.String(string(rune(symbol)))
	}

	cells := state.Cells()
	tape := make(starlark.Tuple, len(cells))
	for n, cell := range cells {
		tape[n] = starlark.MakeInt(int(cell))
	}

	pred := starlark.StringDict{
		"pos":   starlark.MakeInt(state.Pos()),
		"cell":  starlark.MakeInt(int(state.Value())),
		"ticks": starlark.MakeInt(state.Ticks()),
		"last":  last,
		"tape":  tape,
	}

	globals, err := w.program.Init(&thread, pred)
	if err != nil {
		err = &ErrWatch{Expr: w.Expr, Err: err}
		return
	}

	rc, found := globals["rc"]
	if !found {
		err = &ErrWatch{Expr: w.Expr, Err: ErrWatchResult}
		return
	}

	ok = bool(rc.Truth())
	return
}
