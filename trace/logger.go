package trace

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// NewLogger creates a trace logger writing text records to text and JSON
// records to json. Either writer may be nil. With no writers, records are
// discarded.
func NewLogger(text io.Writer, json io.Writer) *slog.Logger {
	var handlers []slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	if text != nil {
		handlers = append(handlers, slog.NewTextHandler(text, opts))
	}

	if json != nil {
		handlers = append(handlers, slog.NewJSONHandler(json, opts))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}
