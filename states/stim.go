// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package states

import (
	"fmt"

	"github.com/emer/ardufsm/device"
	"github.com/emer/ardufsm/trial"
	"github.com/emer/ardufsm/tstate"
)

// StimPeriod presents the stimulus: every tick it drives each device
// handle, in fixed order, with the policy index captured for it at entry,
// so a host parameter change mid-stimulus cannot redirect a running
// presentation.  On rewarded trials the reward valve is asserted inside
// the trailing RewDur window so the reward is coterminous with the
// stimulus.  A response during the stimulus is premature and routes the
// trial to the error timeout at exit.
type StimPeriod struct {
	tstate.Base
	Ctx       *trial.Context  `desc:"shared trial context"`
	Devs      []device.Handle `view:"-" desc:"stimulus devices, driven in order every tick"`
	DevParms  []trial.ParamID `desc:"latched parameter supplying each device's policy index, parallel to Devs"`
	Sensor    device.Sensor   `view:"-" desc:"response signal, watched for premature responses"`
	Valve     device.Output   `view:"-" desc:"reward line for the stimulus-coterminous reward"`
	Policies  []int           `inactive:"+" desc:"policy indices captured at entry, parallel to Devs"`
	Responded bool            `inactive:"+" desc:"response observed during this stimulus"`
}

// NewStimPeriod returns the stimulus epoch driving the given devices,
// each from its parallel policy parameter.  All collaborators are
// required.
func NewStimPeriod(ctx *trial.Context, devs []device.Handle, devParms []trial.ParamID, sensor device.Sensor, valve device.Output) *StimPeriod {
	if len(devs) != len(devParms) {
		panic(fmt.Sprintf("states: %d devices but %d policy params", len(devs), len(devParms)))
	}
	return &StimPeriod{
		Ctx:      ctx,
		Devs:     devs,
		DevParms: devParms,
		Sensor:   sensor,
		Valve:    valve,
		Policies: make([]int, len(devs)),
	}
}

func (sp *StimPeriod) Enter() {
	sp.Tmr.Dur = sp.Ctx.Params.Dur(trial.StimDur)
	sp.Responded = false
	for i, pid := range sp.DevParms {
		sp.Policies[i] = int(sp.Ctx.Params.Val(pid))
	}
}

func (sp *StimPeriod) Tick() {
	for i, dv := range sp.Devs {
		dv.Tick(sp.Policies[i])
	}
	if sp.Sensor.Sample() {
		sp.Responded = true
	}
	if sp.Ctx.Params.RewardedSide() == trial.Go && sp.Tmr.Remaining() < sp.Ctx.Params.Dur(trial.RewDur) {
		sp.Valve.Set(true)
	}
}

func (sp *StimPeriod) Exit() {
	for _, dv := range sp.Devs {
		dv.Finish()
	}
	sp.Valve.Set(false)
	if sp.Responded {
		sp.Ctx.Next = trial.ErrorTimeout
	} else {
		sp.Ctx.Next = trial.RespWindow
	}
}
