package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	level   slog.Level
	records []slog.Record
	err     error
}

func (h *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	h.records = append(h.records, record)
	return h.err
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func newRecord(level slog.Level, msg string) slog.Record {
	return slog.NewRecord(time.Now(), level, msg, 0)
}

func TestMultiHandlerRoutesByChildLevel(t *testing.T) {
	info := &recordingHandler{level: slog.LevelInfo}
	errOnly := &recordingHandler{level: slog.LevelError}
	m := NewMultiHandler(info, errOnly)

	ctx := context.Background()
	require.NoError(t, m.Handle(ctx, newRecord(slog.LevelInfo, "routine")))
	require.NoError(t, m.Handle(ctx, newRecord(slog.LevelError, "broken")))

	assert.Len(t, info.records, 2)
	require.Len(t, errOnly.records, 1)
	assert.Equal(t, "broken", errOnly.records[0].Message)
}

func TestMultiHandlerEnabledWhenAnyChildIs(t *testing.T) {
	m := NewMultiHandler(
		&recordingHandler{level: slog.LevelWarn},
		&recordingHandler{level: slog.LevelError},
	)

	ctx := context.Background()
	assert.False(t, m.Enabled(ctx, slog.LevelInfo))
	assert.True(t, m.Enabled(ctx, slog.LevelWarn))
}

func TestMultiHandlerKeepsGoingAfterChildError(t *testing.T) {
	broken := &recordingHandler{level: slog.LevelInfo, err: errors.New("sink down")}
	healthy := &recordingHandler{level: slog.LevelInfo}
	m := NewMultiHandler(broken, healthy)

	err := m.Handle(context.Background(), newRecord(slog.LevelInfo, "hello"))
	assert.Error(t, err)
	assert.Len(t, healthy.records, 1)
}
