package tui

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

var (
	interrupt atomic.Bool
	signals   chan os.Signal
)

// CatchInterrupts starts recording SIGINT and SIGTERM instead of letting them
// terminate the process, so the screen can be restored before exiting.
func CatchInterrupts() {
	signals = make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		for range signals {
			interrupt.Store(true)
		}
	}()
}

func StopCatchingInterrupts() {
	signal.Stop(signals)
	close(signals)
}

// Interrupted returns true once for every received signal.
func Interrupted() bool {
	return interrupt.Swap(false)
}
