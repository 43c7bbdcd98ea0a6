// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package device

import (
	"math/rand"

	"github.com/emer/ardufsm/tstate"
)

// SimStepper simulates the stimulus stepper motor.  A policy index
// selects a target position from Targets; each tick moves one StepSz
// increment toward it, the way the hardware ramps rather than jumps.
// Policy 0 and any out-of-range policy target home (Targets[0]).
type SimStepper struct {
	Nm      string `desc:"device name for logs and tables"`
	Targets []int  `desc:"target position per policy index; index 0 is home"`
	StepSz  int    `desc:"steps moved per tick"`
	Pos     int    `inactive:"+" desc:"current position in steps"`
	Ticks   int    `inactive:"+" desc:"total ticks received"`
	Parks   int    `inactive:"+" desc:"Finish calls received"`
}

// NewSimStepper returns a stepper with the given per-policy target
// positions (index 0 is home) and a step size of 1.
func NewSimStepper(name string, targets ...int) *SimStepper {
	if len(targets) == 0 {
		targets = []int{0}
	}
	return &SimStepper{Nm: name, Targets: targets, StepSz: 1}
}

func (st *SimStepper) Tick(policy int) {
	st.Ticks++
	tgt := st.Targets[0]
	if policy > 0 && policy < len(st.Targets) {
		tgt = st.Targets[policy]
	}
	switch {
	case st.Pos < tgt:
		st.Pos += st.StepSz
		if st.Pos > tgt {
			st.Pos = tgt
		}
	case st.Pos > tgt:
		st.Pos -= st.StepSz
		if st.Pos < tgt {
			st.Pos = tgt
		}
	}
}

// Finish parks the stepper at home.  The sim retracts instantly; real
// hardware would ramp back during the following epoch.
func (st *SimStepper) Finish() {
	st.Parks++
	st.Pos = st.Targets[0]
}

// Reset parks at home and zeroes the counters, for a fresh session.
func (st *SimStepper) Reset() {
	st.Pos = st.Targets[0]
	st.Ticks = 0
	st.Parks = 0
}

// SimSpeaker simulates the stimulus speaker: a policy index in 1..NTones
// selects which tone plays; 0 and out-of-range are silence.
type SimSpeaker struct {
	Nm      string `desc:"device name for logs and tables"`
	NTones  int    `desc:"number of distinct tones available"`
	Playing int    `inactive:"+" desc:"tone currently playing; 0 = silent"`
	Ticks   int    `inactive:"+" desc:"total ticks received"`
	Stops   int    `inactive:"+" desc:"Finish calls received"`
}

// NewSimSpeaker returns a speaker with the given number of tones.
func NewSimSpeaker(name string, ntones int) *SimSpeaker {
	return &SimSpeaker{Nm: name, NTones: ntones}
}

func (sp *SimSpeaker) Tick(policy int) {
	sp.Ticks++
	if policy >= 1 && policy <= sp.NTones {
		sp.Playing = policy
	} else {
		sp.Playing = 0
	}
}

func (sp *SimSpeaker) Finish() {
	sp.Stops++
	sp.Playing = 0
}

// Reset silences and zeroes the counters, for a fresh session.
func (sp *SimSpeaker) Reset() {
	sp.Playing = 0
	sp.Ticks = 0
	sp.Stops = 0
}

// SimLine simulates a binary output line such as the reward valve,
// recording level transitions so tests can check assertion windows.
type SimLine struct {
	Nm    string `desc:"line name for logs and tables"`
	On    bool   `inactive:"+" desc:"current level"`
	Ups   int    `inactive:"+" desc:"off-to-on transitions"`
	Downs int    `inactive:"+" desc:"on-to-off transitions"`
}

func (ln *SimLine) Set(on bool) {
	if on && !ln.On {
		ln.Ups++
	}
	if !on && ln.On {
		ln.Downs++
	}
	ln.On = on
}

// Reset deasserts and zeroes the transition counters, for a fresh session.
func (ln *SimLine) Reset() {
	ln.On = false
	ln.Ups = 0
	ln.Downs = 0
}

// SimSensor is a directly settable response signal, for tests that need
// the subject to respond at an exact tick.
type SimSensor struct {
	Active bool `desc:"signal level returned by Sample"`
}

func (ss *SimSensor) Sample() bool {
	return ss.Active
}

// WindowSensor reports the response signal active during fixed [From,To)
// windows on the session clock, for scripted demo sessions.
type WindowSensor struct {
	Nm    string             `desc:"sensor name"`
	Clock func() tstate.Time `view:"-" desc:"session clock the windows are tested against"`
	Wins  []TimeWin          `desc:"active windows in session time"`
}

// TimeWin is a [From, To) activity window in session time.
type TimeWin struct {
	From tstate.Time `desc:"window start, inclusive"`
	To   tstate.Time `desc:"window end, exclusive"`
}

func (ws *WindowSensor) Sample() bool {
	now := ws.Clock()
	for _, w := range ws.Wins {
		if now >= w.From && now < w.To {
			return true
		}
	}
	return false
}

// RandSensor draws a pseudo-random response signal with fixed per-tick
// odds: the simulated-subject source for exercising the state machine
// with no hardware attached.  Odds are a chance in 10000 per tick.
type RandSensor struct {
	Nm   string     `desc:"sensor name"`
	Odds int        `desc:"chance in 10000 that a given tick samples active"`
	Rnd  *rand.Rand `view:"-" desc:"private source so sessions replay under a fixed seed"`
}

// NewRandSensor returns a random sensor with the given odds in 10000 and
// seed.
func NewRandSensor(name string, odds int, seed int64) *RandSensor {
	return &RandSensor{Nm: name, Odds: odds, Rnd: rand.New(rand.NewSource(seed))}
}

func (rs *RandSensor) Sample() bool {
	return rs.Rnd.Intn(10000) < rs.Odds
}
