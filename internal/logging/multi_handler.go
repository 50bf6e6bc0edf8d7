package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler forwards each record to every child handler that accepts
// its level. Children are independent: one failing does not stop the
// others, and their errors are joined.
type MultiHandler struct {
	children []slog.Handler
}

func NewMultiHandler(children ...slog.Handler) *MultiHandler {
	return &MultiHandler{children: children}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.children {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range m.children {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		// Handlers may retain the record, so each child gets its own copy.
		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return m
	}
	children := make([]slog.Handler, len(m.children))
	for i, h := range m.children {
		children[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{children: children}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return m
	}
	children := make([]slog.Handler, len(m.children))
	for i, h := range m.children {
		children[i] = h.WithGroup(name)
	}
	return &MultiHandler{children: children}
}
