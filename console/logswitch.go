package console

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// LogSwitch is an slog.Handler that drops every record while switched off.
// Loggers derived with With or WithGroup share the switch of their parent.
type LogSwitch struct {
	next slog.Handler
	on   *atomic.Bool
}

func NewLogSwitch(next slog.Handler, on bool) *LogSwitch {
	s := &LogSwitch{next: next, on: new(atomic.Bool)}
	s.on.Store(on)
	return s
}

func (s *LogSwitch) Enabled(ctx context.Context, level slog.Level) bool {
	return s.on.Load() && s.next.Enabled(ctx, level)
}

func (s *LogSwitch) Handle(ctx context.Context, record slog.Record) error {
	return s.next.Handle(ctx, record)
}

func (s *LogSwitch) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogSwitch{next: s.next.WithAttrs(attrs), on: s.on}
}

func (s *LogSwitch) WithGroup(name string) slog.Handler {
	return &LogSwitch{next: s.next.WithGroup(name), on: s.on}
}

func (s *LogSwitch) IsOn() bool {
	return s.on.Load()
}

// Toggle flips the switch and returns the new position.
func (s *LogSwitch) Toggle() bool {
	for {
		was := s.on.Load()
		if s.on.CompareAndSwap(was, !was) {
			return !was
		}
	}
}
