// Package logging holds the module-wide structured logger.
//
// By default nothing is logged. The CLI installs a real handler with
// SetLogger; library packages fetch it with Logger at the point of use.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger replaces the module logger. Pass nil to silence logging again.
//
// Levels in use:
//   - [slog.LevelDebug]: per-step hull march details
//   - [slog.LevelInfo]: pipeline progress (points loaded, hull saved)
//   - [slog.LevelWarn]: skipped dataset lines
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current module logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
