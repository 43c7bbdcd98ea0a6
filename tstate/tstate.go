// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tstate implements the timed-state lifecycle that every long-running
trial epoch is built on: a one-shot entry action, a per-tick action, and a
one-shot exit action, with a duration-based auto-transition and a stop flag
for forced early exit.

A timed state is driven entirely by repeated calls to Advance from the
per-tick dispatcher -- nothing here blocks or keeps its own clock.  Exactly
one of Enter / Tick / Exit runs per call, so an epoch's actions stay short
and the scheduler loop stays responsive no matter how long the epoch lasts.
Instances re-arm on exit and persist across trials without reallocation.
*/
package tstate

// Time is a millisecond timestamp on the scheduler's monotonic clock.
// It is simulation or rig time, not wall-clock time.
type Time int64

// Timer is the bookkeeping every timed state carries: its duration, when
// the current activation span began, and whether an early stop was
// requested.  Entry is meaningful only while Active is true -- Active is
// the explicit representation of "not currently running", so a state that
// happens to enter at time 0 is not confused with an idle one.
type Timer struct {
	Dur      Time `desc:"how long the state runs before its exit action fires, in ms; entry actions typically set this from a latched trial parameter"`
	Entry    Time `desc:"time of the entry action for the current activation span; only meaningful while Active"`
	Active   bool `desc:"true between the entry action and the exit action"`
	StopReq  bool `desc:"request to exit at the next Advance regardless of the deadline; cleared on entry"`
	LastTime Time `desc:"time of the most recent Advance call, readable by entry, tick and exit actions for logging and deadline arithmetic"`
}

// Deadline returns the scheduled auto-exit time for the current activation
// span.  Only meaningful while Active.
func (tm *Timer) Deadline() Time {
	return tm.Entry + tm.Dur
}

// Remaining returns the time left before the scheduled exit, which can be
// negative once the deadline has passed.  Only meaningful while Active.
func (tm *Timer) Remaining() Time {
	return tm.Deadline() - tm.LastTime
}

// Stop requests an early exit: the next Advance runs the exit action even
// if the deadline has not been reached.
func (tm *Timer) Stop() {
	tm.StopReq = true
}

// Reset returns the timer to idle without running the exit action.
// Use only when tearing down or reinitializing a whole session.
func (tm *Timer) Reset() {
	tm.Entry = 0
	tm.Active = false
	tm.StopReq = false
	tm.LastTime = 0
}

// State is the lifecycle contract implemented by every timed trial epoch.
// Base provides no-op defaults for all three actions, so concrete states
// embed Base and override only what they need.
type State interface {
	// Timing returns the state's Timer bookkeeping.
	Timing() *Timer

	// Enter is the one-shot action at the start of an activation span.
	// It runs before the deadline is armed, so it can set Timing().Dur
	// from a latched trial parameter.
	Enter()

	// Tick is the repeated per-call action while the state is active.
	Tick()

	// Exit is the one-shot action at the end of an activation span,
	// whether by deadline or by a stop request.
	Exit()
}

// Base is the default State implementation: a Timer plus no-op actions.
type Base struct {
	Tmr Timer `desc:"duration and activation bookkeeping"`
}

func (bs *Base) Timing() *Timer { return &bs.Tmr }

func (bs *Base) Enter() {}

func (bs *Base) Tick() {}

func (bs *Base) Exit() {}

// Advance runs one scheduler tick of the given state at the given time.
// Exactly one of Enter / Tick / Exit fires per call:
//   - if the state is not active, Enter fires, the stop flag clears, and
//     the span is armed with Entry = now;
//   - else if a stop was requested or now has reached Entry + Dur, Exit
//     fires and the state re-arms (Active false) for its next use;
//   - else Tick fires.
//
// A Dur of zero therefore exits on the first call after entry, and entry
// and exit each fire exactly once per activation span no matter how many
// calls occur.
func Advance(st State, now Time) {
	tm := st.Timing()
	tm.LastTime = now
	switch {
	case !tm.Active:
		st.Enter()
		tm.StopReq = false
		tm.Entry = now
		tm.Active = true
	case tm.StopReq || now >= tm.Deadline():
		st.Exit()
		tm.Active = false
	default:
		st.Tick()
	}
}
