package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/drills/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		sc.stop.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

// ExitCode maps a script error to the process exit status and reports
// whether the error still has to be printed. When sig stopped the run, the
// status follows the shell convention of 128 plus the signal number.
func ExitCode(err error, sig os.Signal) (code int, show bool) {
	switch {
	case err == nil:
		return 0, false
	case sig != nil:
		if n, ok := sig.(syscall.Signal); ok {
			return 128 + int(n), false
		}
		return 130, false
	case isInterrupted(err):
		return 130, false
	case domain.IsReported(err):
		return 1, false
	default:
		return 1, true
	}
}
