// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package states

import (
	"github.com/emer/ardufsm/trial"
	"github.com/emer/ardufsm/tspeak"
	"github.com/emer/ardufsm/tstate"
)

// ErrorTimeout is the penalty period after a premature or incorrect
// response: nothing happens for the timeout duration, then the trial
// closes out through the inter-trial interval.
type ErrorTimeout struct {
	tstate.Base
	Ctx *trial.Context `desc:"shared trial context"`
}

func (et *ErrorTimeout) Enter() {
	et.Tmr.Dur = et.Ctx.Params.Dur(trial.TimeoutDur)
}

func (et *ErrorTimeout) Exit() {
	et.Ctx.Next = trial.InterTrialInterval
}

// InterTrial separates trials and reports the trial's results: entry
// emits one TRLR line per result, in declaration order, with unset
// results reporting the 0 wire sentinel.  Exit hands control back to
// WaitToStart for the next release.
type InterTrial struct {
	tstate.Base
	Ctx *trial.Context `desc:"shared trial context"`
	Log *tspeak.Writer `view:"-" desc:"wire log for the TRLR result lines"`
}

func (it *InterTrial) Enter() {
	it.Tmr.Dur = it.Ctx.Params.Dur(trial.ITIDur)
	for rid := trial.ResultID(0); rid < trial.ResultIDN; rid++ {
		it.Log.Result(it.Tmr.LastTime, rid.Abbrev(), it.Ctx.Results.Val(rid))
	}
}

func (it *InterTrial) Exit() {
	it.Ctx.Next = trial.WaitToStart
}
