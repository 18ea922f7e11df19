// Package tick schedules fixed-step simulation updates and variable-step
// frame updates with accumulator catch-up, plus run-once startup/shutdown
// hooks, grounded on the teacher's GameLoop.tick (cmd/mini-mc/game_loop.go)
// and FPSLimiter (internal/game/fps_limiter.go) (spec.md §4.10).
package tick

import "sync"

// Loop drives a fixed-step simulation at FixedHz alongside a variable-step
// per-frame update, using an accumulator so the simulation advances by a
// constant dt regardless of how irregularly frames arrive.
type Loop struct {
	fixedDt          float64
	accumulator      float64
	maxStepsPerFrame int

	startOnce    sync.Once
	shutdownOnce sync.Once
}

// New creates a Loop stepping the fixed update at fixedHz times per second.
// maxStepsPerFrame bounds how many fixed steps a single Advance call will
// run, so a long stall (a breakpoint, a GC pause, a loading screen) cannot
// force the simulation to "catch up" by running thousands of steps back to
// back (the classic "spiral of death"); any remaining accumulated time past
// that bound is simply dropped.
func New(fixedHz float64, maxStepsPerFrame int) *Loop {
	if maxStepsPerFrame < 1 {
		maxStepsPerFrame = 1
	}
	return &Loop{fixedDt: 1.0 / fixedHz, maxStepsPerFrame: maxStepsPerFrame}
}

// Startup runs fn exactly once, the first time it is called on this Loop,
// no matter how many times Startup is subsequently invoked.
func (l *Loop) Startup(fn func()) {
	l.startOnce.Do(fn)
}

// Shutdown runs fn exactly once.
func (l *Loop) Shutdown(fn func()) {
	l.shutdownOnce.Do(fn)
}

// FixedDt returns the constant step size fixed updates run with.
func (l *Loop) FixedDt() float64 {
	return l.fixedDt
}

// Advance accumulates frameDt and invokes fixed zero or more times with a
// constant l.FixedDt() step (bounded by maxStepsPerFrame per call), then
// invokes variable exactly once with frameDt. fixed and variable are both
// optional; a nil function is simply skipped.
func (l *Loop) Advance(frameDt float64, fixed func(dt float64), variable func(dt float64)) {
	if frameDt < 0 {
		frameDt = 0
	}
	l.accumulator += frameDt

	if fixed != nil {
		// A small tolerance keeps repeated float subtraction from losing a
		// step (0.1s at 50Hz must run 5 steps, not 4).
		eps := l.fixedDt * 1e-9
		steps := 0
		for l.accumulator+eps >= l.fixedDt && steps < l.maxStepsPerFrame {
			fixed(l.fixedDt)
			l.accumulator -= l.fixedDt
			steps++
		}
		if l.accumulator < 0 {
			l.accumulator = 0
		}
		if steps == l.maxStepsPerFrame && l.accumulator+eps >= l.fixedDt {
			// Dropped catch-up time rather than spiraling; next Advance
			// starts fresh instead of compounding the backlog further.
			l.accumulator = 0
		}
	}

	if variable != nil {
		variable(frameDt)
	}
}

// Alpha returns the accumulator's remaining fraction of a fixed step, in
// [0,1), suitable for interpolating render state between the last two
// fixed-step snapshots.
func (l *Loop) Alpha() float64 {
	return l.accumulator / l.fixedDt
}
