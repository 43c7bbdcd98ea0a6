// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package trial holds the data model of a behavioral trial: the latched
parameter store, the write-once result store, the phase / response /
outcome enumerations, and the Context that ties them together for the
epoch states.

Parameters persist across trials (latched from host-set pending values at
each trial start); results are transient (reset to unset every trial).
Only one epoch is ever active under the single-threaded tick model, so the
stores need no locking.
*/
package trial

// Context is the explicit shared state of the trial in progress.  Every
// epoch state receives a pointer to the one Context at construction and
// reads parameters, writes results, and posts its next-phase decision
// through it -- there is no other channel between epochs.
type Context struct {
	Params   *Params  `desc:"latched trial parameters"`
	Results  *Results `desc:"write-once trial results"`
	Rewards  int      `desc:"rewards delivered so far this trial"`
	Next     Phase    `desc:"next-phase cell: epoch exit (and forcing tick) actions write it, the dispatcher reads it after each advance"`
	StartReq bool     `inactive:"+" desc:"host release flag: set by a RELEASE_TRL command, consumed by the dispatcher"`
	TrialNum int      `inactive:"+" desc:"trials started this session"`
}

// NewContext returns a Context with parameters at their defaults and no
// trial underway.
func NewContext() *Context {
	return &Context{
		Params:  NewParams(),
		Results: NewResults(),
	}
}

// StartTrial latches pending parameters into the current snapshot and
// resets the results and the per-trial reward count.  Called by the
// dispatcher at TrialStart, before anything reads the snapshot.
func (tc *Context) StartTrial() {
	tc.Params.Latch()
	tc.Results.Reset()
	tc.Rewards = 0
	tc.TrialNum++
}

// Release sets the host "start permitted" flag.  The dispatcher consumes
// it in WaitToStart.
func (tc *Context) Release() {
	tc.StartReq = true
}
