// Package goroutine launches background work that must never take the
// process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/nexus-desk/nexus/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine through Run.
func SafeGo(log logger.Interface, name string, fn func()) {
	go Run(log, name, fn)
}

// Run calls fn and turns a panic into an error log with the stack attached.
// It reports whether fn returned normally.
func Run(log logger.Interface, name string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			ok = false
		}
	}()
	fn()
	return true
}
