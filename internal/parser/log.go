package parser

import (
	"sync/atomic"

	"triptalk/pkg/logger"
)

var current atomic.Pointer[logger.Logger]

func init() {
	current.Store(logger.Nop())
}

// SetLogger routes recovered parse failures to l. A nil l restores the no-op
// logger.
func SetLogger(l *logger.Logger) {
	if l == nil {
		l = logger.Nop()
	}
	current.Store(l.With("component", "parser"))
}

func plog() *logger.Logger {
	return current.Load()
}
