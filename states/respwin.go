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

// RespWindow accepts and scores the subject's response.  The first
// response of the trial is recorded write-once; a correct response earns
// a reward (up to the per-trial cap), a wrong one either terminates the
// trial or, with TermOnErr disabled, is recorded and the window runs on.
//
// The window stays armed across a Reward / PostRewardPause detour: the
// dispatcher leaves this phase while the timer keeps its entry time, so
// when the pause routes back here the window resumes the same activation
// span and the original deadline still stands.
type RespWindow struct {
	tstate.Base
	Ctx    *trial.Context `desc:"shared trial context"`
	Sensor device.Sensor  `view:"-" desc:"response signal source; a RandSensor here makes the simulated variant"`
	Log    *tspeak.Writer `view:"-" desc:"wire log, for the nonterminating-error report"`
}

// NewRespWindow returns the response window reading the given sensor.
func NewRespWindow(ctx *trial.Context, sensor device.Sensor, log *tspeak.Writer) *RespWindow {
	return &RespWindow{Ctx: ctx, Sensor: sensor, Log: log}
}

// NewFakeRespWindow returns the simulated-response variant: the same
// window reading a pseudo-random sensor (odds in 10000 per tick) instead
// of hardware, for exercising the state machine on the bench.
func NewFakeRespWindow(ctx *trial.Context, odds int, seed int64, log *tspeak.Writer) *RespWindow {
	return NewRespWindow(ctx, device.NewRandSensor("fake", odds, seed), log)
}

func (rw *RespWindow) Enter() {
	rw.Tmr.Dur = rw.Ctx.Params.Dur(trial.RespWinDur)
}

func (rw *RespWindow) Tick() {
	responded := rw.Sensor.Sample()

	// the reward cap routes to the interval on the tick that detects it,
	// regardless of sensor state
	if rw.Ctx.Rewards >= rw.Ctx.Params.MaxRewards() {
		rw.Ctx.Next = trial.InterTrialInterval
		rw.Tmr.Stop()
		return
	}
	if !responded {
		return
	}

	// first response wins
	first := rw.Ctx.Results.SetOnce(trial.Resp, int64(trial.Go))

	if rw.Ctx.Params.RewardedSide() == trial.Go {
		rw.Ctx.Rewards++
		rw.Ctx.Results.Set(trial.Outc, int64(trial.Hit))
		rw.Ctx.Next = trial.Reward
		return
	}
	if !rw.Ctx.Params.TermOnError() {
		// wrong response with termination disabled: record it, report it
		// once, and keep the window running; the timeout exit scores it
		if first {
			rw.Log.Error(rw.Tmr.LastTime, "wrong response, TOE disabled, trial continues")
		}
		return
	}
	rw.Ctx.Results.Set(trial.Outc, int64(trial.FalseAlarm))
	rw.Ctx.Next = trial.ErrorTimeout
}

func (rw *RespWindow) Exit() {
	rw.Ctx.Next = trial.InterTrialInterval
	if rw.Tmr.StopReq {
		// a forced stop already routed the trial, with the response and
		// outcome on record, so the timeout fills below do not apply
		return
	}
	if rw.Ctx.Results.SetOnce(trial.Resp, int64(trial.NoGo)) {
		// window ran out unanswered: outcome depends on what the
		// subject was supposed to do
		if rw.Ctx.Params.RewardedSide() == trial.NoGo {
			rw.Ctx.Results.Set(trial.Outc, int64(trial.CorrectRejection))
		} else {
			rw.Ctx.Results.Set(trial.Outc, int64(trial.Miss))
		}
	} else if !rw.Ctx.Results.IsSet(trial.Outc) {
		// a wrong response was recorded with termination disabled;
		// score it now that the window has run out
		rw.Ctx.Results.Set(trial.Outc, int64(trial.FalseAlarm))
	}
}
