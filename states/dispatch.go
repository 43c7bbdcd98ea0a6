// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package states implements the concrete trial epochs of the go / nogo
protocol -- stimulus period, response window, reward, post-reward pause,
error timeout, inter-trial interval -- and the Dispatcher that routes each
scheduler tick to the current one.

The trial cycle is:

	WaitToStart -> TrialStart -> StimPeriod
	    -> ErrorTimeout                  (premature response)
	    -> RespWindow
	        -> Reward -> PostRewardPause -> RespWindow   (hit, under cap)
	        -> ErrorTimeout              (wrong response, TermOnErr)
	        -> (keeps running)           (wrong response, no TermOnErr)
	    -> InterTrialInterval -> WaitToStart

Everything runs on one goroutine, driven by repeated Dispatcher.Tick
calls; epochs are tstate timed states and never block.
*/
package states

import (
	"fmt"

	"github.com/emer/ardufsm/device"
	"github.com/emer/ardufsm/trial"
	"github.com/emer/ardufsm/tspeak"
	"github.com/emer/ardufsm/tstate"
)

// Dispatcher is the per-tick router: it maps the current phase to either
// an immediate bounded action (WaitToStart, TrialStart) or a timed
// epoch's Advance, and adopts the next-phase decision the epoch posts in
// the context.  It also applies parsed host commands to the context.
type Dispatcher struct {
	Ctx   *trial.Context   `desc:"shared trial context"`
	Cur   trial.Phase      `inactive:"+" desc:"current phase"`
	Log   *tspeak.Writer   `view:"-" desc:"wire log"`
	Stim  *StimPeriod      `desc:"stimulus period epoch"`
	Resp  *RespWindow      `desc:"response window epoch"`
	Rew   *Reward          `desc:"reward epoch"`
	Pause *PostRewardPause `desc:"post-reward pause epoch"`
	TOut  *ErrorTimeout    `desc:"error timeout epoch"`
	ITI   *InterTrial      `desc:"inter-trial interval epoch"`
}

// NewDispatcher wires the full epoch set around one context: the given
// stimulus devices (each driven from its parallel policy parameter), the
// response sensor, and the reward valve.  log may wrap nil to run silent.
func NewDispatcher(ctx *trial.Context, log *tspeak.Writer, devs []device.Handle, devParms []trial.ParamID, sensor device.Sensor, valve device.Output) *Dispatcher {
	dp := &Dispatcher{Ctx: ctx, Log: log, Cur: trial.WaitToStart}
	dp.Stim = NewStimPeriod(ctx, devs, devParms, sensor, valve)
	dp.Resp = NewRespWindow(ctx, sensor, log)
	dp.Rew = &Reward{Ctx: ctx, Valve: valve, Log: log}
	dp.Pause = &PostRewardPause{Ctx: ctx}
	dp.TOut = &ErrorTimeout{Ctx: ctx}
	dp.ITI = &InterTrial{Ctx: ctx, Log: log}
	return dp
}

// Init returns the machine to WaitToStart with every epoch timer idle and
// the release flag cleared.  Pending parameters are kept; use
// Ctx.Params.Defaults to wipe those too.
func (dp *Dispatcher) Init() {
	dp.Cur = trial.WaitToStart
	dp.Ctx.StartReq = false
	for _, st := range dp.states() {
		st.Timing().Reset()
	}
}

func (dp *Dispatcher) states() []tstate.State {
	return []tstate.State{dp.Stim, dp.Resp, dp.Rew, dp.Pause, dp.TOut, dp.ITI}
}

// Tick routes one scheduler tick at the given time and returns the phase
// now current.  The switch is exhaustive over Phase; anything else is a
// programmer error and panics rather than being silently ignored.
func (dp *Dispatcher) Tick(now tstate.Time) trial.Phase {
	switch dp.Cur {
	case trial.WaitToStart:
		if dp.Ctx.StartReq {
			dp.Ctx.StartReq = false
			if missing := dp.Ctx.Params.MissingRequired(); missing != trial.ParamIDN {
				dp.Log.Error(now, "release refused: required param "+missing.Abbrev()+" unset")
				break
			}
			dp.Log.Released(now)
			dp.Cur = trial.TrialStart
		}

	case trial.TrialStart:
		dp.Ctx.StartTrial()
		// no epoch carries an armed span across trials; in particular a
		// mid-window transition that ends the trial can leave the window
		// armed with a stale deadline
		for _, st := range dp.states() {
			st.Timing().Reset()
		}
		dp.Log.TrialStart(now)
		for pid := trial.ParamID(0); pid < trial.ParamIDN; pid++ {
			if pid.Report() {
				dp.Log.Param(now, pid.Abbrev(), dp.Ctx.Params.Val(pid))
			}
		}
		dp.Cur = trial.StimPeriod

	case trial.StimPeriod:
		dp.advance(dp.Stim, now)
	case trial.RespWindow:
		dp.advance(dp.Resp, now)
	case trial.Reward:
		dp.advance(dp.Rew, now)
	case trial.PostRewardPause:
		dp.advance(dp.Pause, now)
	case trial.ErrorTimeout:
		dp.advance(dp.TOut, now)
	case trial.InterTrialInterval:
		dp.advance(dp.ITI, now)

	default:
		panic(fmt.Sprintf("states: dispatch on invalid phase %d", int(dp.Cur)))
	}
	return dp.Cur
}

// advance runs one engine call on a timed epoch with the next-phase cell
// defaulted to "stay here", then adopts whatever the epoch decided.
func (dp *Dispatcher) advance(st tstate.State, now tstate.Time) {
	dp.Ctx.Next = dp.Cur
	tstate.Advance(st, now)
	dp.Cur = dp.Ctx.Next
}

// Command applies one parsed host command: SET writes a pending
// parameter, RELEASE_TRL sets the start flag.  An unknown abbreviation is
// logged and dropped -- a malformed host command has no effect until
// corrected.
func (dp *Dispatcher) Command(now tstate.Time, cmd tspeak.Cmd) {
	switch cmd.Kind {
	case tspeak.CmdSet:
		pid, ok := trial.ParamByAbbrev(cmd.Abbrev)
		if !ok {
			dp.Log.Error(now, "SET unknown param "+cmd.Abbrev)
			return
		}
		dp.Ctx.Params.SetPending(pid, cmd.Val)
	case tspeak.CmdRelease:
		dp.Ctx.Release()
	}
}

// CommandLine parses and applies one line of host input, logging and
// dropping malformed lines.
func (dp *Dispatcher) CommandLine(now tstate.Time, line string) {
	cmd, err := tspeak.ParseCommand(line)
	if err != nil {
		dp.Log.Error(now, err.Error())
		return
	}
	dp.Command(now, cmd)
}
