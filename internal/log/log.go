// Package log provides a context-aware logging utility using slog.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type slogFieldKey struct{}

var slogFields slogFieldKey

// ContextHandler appends the attributes stored by AppendCtx to every record.
type ContextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before
// calling the underlying handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be
// included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	existing, _ := parent.Value(slogFields).([]slog.Attr)
	// Copy so sibling contexts never share a backing array.
	attrs := make([]slog.Attr, 0, len(existing)+1)
	attrs = append(attrs, existing...)
	attrs = append(attrs, attr)
	return context.WithValue(parent, slogFields, attrs)
}

// New returns a JSON logger writing to stderr. A nil options logs at debug.
func New(options *slog.HandlerOptions) *slog.Logger {
	return NewWithWriter(os.Stderr, options)
}

func NewWithWriter(w io.Writer, options *slog.HandlerOptions) *slog.Logger {
	if options == nil {
		options = &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}
	}

	return slog.New(ContextHandler{
		Handler: slog.NewJSONHandler(w, options),
	})
}

func NullLogger() *slog.Logger {
	return NewWithWriter(io.Discard, &slog.HandlerOptions{})
}
