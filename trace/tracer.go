package trace

import (
	"log/slog"

	"github.com/ezrec/tapebf/interpreter"
)

// Tracer records interpreter observations to a logger.
type Tracer struct {
	Logger *slog.Logger // Destination of trace records.
	Watch  *Watch       // If set, only matching observations are recorded.

	Count int   // Records emitted.
	Err   error // First watch evaluation error.
}

// Observe records state. It has the shape of an interpreter.Observer.
func (tr *Tracer) Observe(state interpreter.State) {
	if tr.Watch != nil {
		if tr.Err != nil {
			return
		}
		ok, err := tr.Watch.Match(state)
		if err != nil {
			tr.Err = err
			tr.Logger.Error("watch", "error", err)
			return
		}
		if !ok {
			return
		}
	}

	attrs := []any{
		slog.Int("pos", state.Pos()),
		slog.Int("cell", int(state.Value())),
		slog.Int("ticks", state.Ticks()),
	}
	if offset, symbol, ok := state.Last(); ok {
		attrs = append(attrs,
			slog.Int("offset", offset),
			slog.String("last", string(rune(symbol))),
		)
	}
	attrs = append(attrs, slog.Any("tape", state.Cells()))

	tr.Logger.Debug("step", attrs...)
	tr.Count++
}
