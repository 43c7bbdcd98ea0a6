// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trial

import (
	"github.com/emer/ardufsm/tspeak"
	"github.com/emer/ardufsm/tstate"
)

// Value is an integer trial value with an explicit set flag, so a genuine
// zero is always distinguishable from never-written.  The wire still uses
// 0 for "no data" at the reporting boundary, but nothing inside the rig
// tests a magic value.
type Value struct {
	Val int64 `desc:"the value"`
	Set bool  `desc:"false until explicitly written"`
}

// Params holds the trial parameters twice over: the pending values the
// host writes into at any time, and the current values latched from
// pending at each trial start.  Epochs only ever read current, so a host
// SET arriving mid-trial cannot affect the running trial -- it takes
// effect at the next TrialStart.
type Params struct {
	Pend [ParamIDN]Value `desc:"host-visible values; writes land here and latch at the next trial start"`
	Cur  [ParamIDN]Value `desc:"latched snapshot the running trial reads; unset until the first latch"`
}

// NewParams returns a parameter store with pending values at their
// declared defaults.
func NewParams() *Params {
	ps := &Params{}
	ps.Defaults()
	return ps
}

// Defaults resets pending values to their declared defaults (parameters
// without a default become unset) and clears the latched snapshot.
func (ps *Params) Defaults() {
	for pid := ParamID(0); pid < ParamIDN; pid++ {
		def, has := pid.Default()
		ps.Pend[pid] = Value{Val: def, Set: has}
		ps.Cur[pid] = Value{}
	}
}

// SetPending stores a host-set value; it takes effect at the next trial
// start.
func (ps *Params) SetPending(pid ParamID, v int64) {
	ps.Pend[pid] = Value{Val: v, Set: true}
}

// Latch copies the pending values into the current snapshot.  Called once
// per trial, at trial start; this is the only way current values change.
func (ps *Params) Latch() {
	ps.Cur = ps.Pend
}

// Get returns the latched value of a parameter and whether it is set.
func (ps *Params) Get(pid ParamID) (int64, bool) {
	v := ps.Cur[pid]
	return v.Val, v.Set
}

// Val returns the latched value, or 0 when unset (the wire sentinel --
// use Get where the difference matters).
func (ps *Params) Val(pid ParamID) int64 {
	return ps.Cur[pid].Val
}

// MissingRequired returns the first required parameter whose pending value
// is unset, or ParamIDN if the pending set is complete enough to release
// a trial.
func (ps *Params) MissingRequired() ParamID {
	for pid := ParamID(0); pid < ParamIDN; pid++ {
		if pid.Required() && !ps.Pend[pid].Set {
			return pid
		}
	}
	return ParamIDN
}

// Dur returns a duration parameter from the latched snapshot as a
// tstate.Time, for epoch entry actions latching their durations.
func (ps *Params) Dur(pid ParamID) tstate.Time {
	return tstate.Time(ps.Val(pid))
}

// RewardedSide returns the rewarded side latched for this trial.
func (ps *Params) RewardedSide() Response {
	return Response(ps.Val(RewSide))
}

// TermOnError returns whether an incorrect response terminates the trial.
// Anything other than an explicit No counts as yes, matching the wire
// convention that only a definite opt-out disables termination.
func (ps *Params) TermOnError() bool {
	v, set := ps.Get(TermOnErr)
	return !set || v != tspeak.No
}

// MaxRewards returns the reward cap for this trial.
func (ps *Params) MaxRewards() int {
	return int(ps.Val(MaxRew))
}
