// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package states

import (
	"github.com/emer/ardufsm/device"
	"github.com/emer/ardufsm/trial"
	"github.com/emer/ardufsm/tspeak"
	"github.com/emer/ardufsm/tstate"
)

// Reward delivers one reward as a timed state: entry emits the EV R_L
// event and opens the valve, exit closes it after the reward duration.
// Holding the valve open never blocks the scheduler -- other work (the
// wire log, run control, device ramp-downs elsewhere) proceeds on every
// tick in between.
type Reward struct {
	tstate.Base
	Ctx   *trial.Context `desc:"shared trial context"`
	Valve device.Output  `view:"-" desc:"reward valve line"`
	Log   *tspeak.Writer `view:"-" desc:"wire log for the reward event"`
}

func (rd *Reward) Enter() {
	rd.Tmr.Dur = rd.Ctx.Params.Dur(trial.RewDur)
	rd.Log.Event(rd.Tmr.LastTime, tspeak.EvReward)
	rd.Valve.Set(true)
}

func (rd *Reward) Exit() {
	rd.Valve.Set(false)
	rd.Ctx.Next = trial.PostRewardPause
}

// PostRewardPause is the quiet gap after a reward: no actions, just the
// InterRewInt duration, then back to the response window so further
// responses can be accepted up to the reward cap.
type PostRewardPause struct {
	tstate.Base
	Ctx *trial.Context `desc:"shared trial context"`
}

func (pp *PostRewardPause) Enter() {
	pp.Tmr.Dur = pp.Ctx.Params.Dur(trial.InterRewInt)
}

func (pp *PostRewardPause) Exit() {
	pp.Ctx.Next = trial.RespWindow
}
