// Package clock supplies the nanosecond timestamp source the engine
// substitutes when a caller admits an order without pre-assigning one.
// The engine itself is responsible for the strict-monotonicity tiebreak
// (see package engine); a Source here only promises non-decreasing
// values under normal operation.
package clock

import (
	"sync/atomic"
	"time"
)

// Source supplies the current time in nanoseconds since the Unix epoch.
type Source interface {
	NowNs() uint64
}

// System reads the real wall clock via time.Now. It does not itself
// guarantee strict monotonicity across calls on coarse-grained clocks;
// that guarantee is layered on top by the engine.
type System struct{}

func (System) NowNs() uint64 {
	return uint64(time.Now().UnixNano())
}

// Manual is a deterministic, test-friendly clock: it only advances when
// told to. Useful for exercising the engine's tiebreak behavior without
// depending on real time.
type Manual struct {
	now atomic.Uint64
}

// NewManual constructs a Manual clock starting at start nanoseconds.
func NewManual(start uint64) *Manual {
	m := &Manual{}
	m.now.Store(start)
	return m
}

func (m *Manual) NowNs() uint64 {
	return m.now.Load()
}

// Set pins the clock to a specific value, including backwards in time --
// useful for exercising the engine's tiebreak under a non-monotonic
// clock source.
func (m *Manual) Set(ns uint64) {
	m.now.Store(ns)
}

// Advance moves the clock forward by delta nanoseconds.
func (m *Manual) Advance(delta uint64) {
	m.now.Add(delta)
}
