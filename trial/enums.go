// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trial

import (
	"github.com/emer/ardufsm/tspeak"
	"github.com/goki/ki/kit"
)

// Phase enumerates the protocol phases of a trial.  Exactly one phase is
// current at any time; transitions are decided only by the dispatcher and
// the epoch exit actions, never by external mutation.
type Phase int32

const (
	// WaitToStart idles until the host releases the next trial.
	WaitToStart Phase = iota

	// TrialStart latches parameters, resets results, reports TRLP lines.
	TrialStart

	// StimPeriod presents the stimulus by driving the device handles.
	StimPeriod

	// RespWindow accepts and scores the subject's response.
	RespWindow

	// Reward holds the reward output asserted for the reward duration.
	Reward

	// PostRewardPause is the quiet gap after a reward before the response
	// window resumes.
	PostRewardPause

	// ErrorTimeout is the penalty period after an incorrect or premature
	// response.
	ErrorTimeout

	// InterTrialInterval reports TRLR result lines and separates trials.
	InterTrialInterval

	PhaseN
)

var KiT_Phase = kit.Enums.AddEnum(PhaseN, kit.NotBitFlag, nil)

func (ph Phase) String() string {
	switch ph {
	case WaitToStart:
		return "WaitToStart"
	case TrialStart:
		return "TrialStart"
	case StimPeriod:
		return "StimPeriod"
	case RespWindow:
		return "RespWindow"
	case Reward:
		return "Reward"
	case PostRewardPause:
		return "PostRewardPause"
	case ErrorTimeout:
		return "ErrorTimeout"
	case InterTrialInterval:
		return "InterTrialInterval"
	}
	return "PhaseInvalid"
}

// Timed returns true for phases that delegate to a timed state; the two
// immediate phases perform a bounded action in a single dispatcher tick.
func (ph Phase) Timed() bool {
	return ph != WaitToStart && ph != TrialStart
}

// Response identifies what the subject did.  The nonzero values are fixed
// by the TrialSpeak wire protocol and appear verbatim in TRLR RESP lines.
type Response int32

const (
	// NoResponse is the zero value; a recorded result always carries Go
	// or NoGo, with the unset case represented explicitly in the store.
	NoResponse Response = iota

	// Go: the subject responded (licked) -- wire value 1.
	Go

	// NoGo: the subject withheld response -- wire value 2.  Doubles as
	// the identity written when a response window times out unanswered.
	NoGo

	ResponseN
)

var KiT_Response = kit.Enums.AddEnum(ResponseN, kit.NotBitFlag, nil)

func (rp Response) String() string {
	switch rp {
	case NoResponse:
		return "NoResponse"
	case Go:
		return "Go"
	case NoGo:
		return "NoGo"
	}
	return "ResponseInvalid"
}

// Outcome scores a completed trial.  The nonzero values are fixed by the
// TrialSpeak wire protocol and appear verbatim in TRLR OUTC lines.
type Outcome int32

const (
	NoOutcome Outcome = iota

	// Hit: responded on a rewarded-side-Go trial -- wire value 1.
	Hit

	// FalseAlarm: responded when the rewarded side was NoGo -- wire value 2.
	FalseAlarm

	// CorrectRejection: withheld on a NoGo trial -- wire value 3.
	CorrectRejection

	// Miss: withheld on a Go trial -- wire value 4.
	Miss

	OutcomeN
)

var KiT_Outcome = kit.Enums.AddEnum(OutcomeN, kit.NotBitFlag, nil)

func (oc Outcome) String() string {
	switch oc {
	case NoOutcome:
		return "NoOutcome"
	case Hit:
		return "Hit"
	case FalseAlarm:
		return "FalseAlarm"
	case CorrectRejection:
		return "CorrectRejection"
	case Miss:
		return "Miss"
	}
	return "OutcomeInvalid"
}

// Correct returns true for the outcomes that mean the subject got the
// trial right.
func (oc Outcome) Correct() bool {
	return oc == Hit || oc == CorrectRejection
}

// ParamID is the closed key type for the trial parameters.  Using a named
// key instead of bare array positions keeps the wire abbreviation, default,
// and report flag attached to the identifier and lets dispatch be checked
// for exhaustiveness.
type ParamID int32

const (
	// StimPolicy selects the stepper-motor action for the stimulus period
	// (a policy index passed to the device handle each tick).
	StimPolicy ParamID = iota

	// SpkrPolicy selects the speaker action for the stimulus period.
	SpkrPolicy

	// StimDur is the stimulus period duration in ms.
	StimDur

	// RewSide is the rewarded side this trial (Response wire value).
	// Required: the host must set it before every release.
	RewSide

	// RewDur is how long the reward valve stays open, in ms.
	RewDur

	// InterRewInt is the pause after a reward before the response window
	// resumes, in ms.
	InterRewInt

	// TimeoutDur is the error-timeout duration in ms.
	TimeoutDur

	// ITIDur is the inter-trial interval duration in ms.
	ITIDur

	// RespWinDur is the response window duration in ms.
	RespWinDur

	// MaxRew is the maximum rewards deliverable within one trial.
	MaxRew

	// TermOnErr controls whether an incorrect response ends the trial
	// immediately (TrialSpeak Yes / No token).
	TermOnErr

	ParamIDN
)

var KiT_ParamID = kit.Enums.AddEnum(ParamIDN, kit.NotBitFlag, nil)

func (pid ParamID) String() string {
	return pid.Abbrev()
}

// paramInfo fixes the per-parameter wire abbreviation, default value (and
// whether there is one -- a parameter without a default starts unset), the
// report-each-trial flag, and whether the host must set it before release.
type paramInfo struct {
	Abbrev   string
	Def      int64
	HasDef   bool
	Report   bool
	Required bool
}

var paramTab = [ParamIDN]paramInfo{
	StimPolicy:  {"STPRIDX", 0, true, true, false},
	SpkrPolicy:  {"SPKRIDX", 0, true, true, false},
	StimDur:     {"STIMDUR", 2000, true, true, false},
	RewSide:     {"REW", 0, false, true, true},
	RewDur:      {"REW_DUR", 50, true, false, false},
	InterRewInt: {"IRI", 500, true, false, false},
	TimeoutDur:  {"TO", 6000, true, false, false},
	ITIDur:      {"ITI", 3000, true, false, false},
	RespWinDur:  {"RWIN", 45000, true, false, false},
	MaxRew:      {"MRT", 1, true, false, false},
	TermOnErr:   {"TOE", tspeak.Yes, true, false, false},
}

// Abbrev returns the TrialSpeak wire abbreviation for this parameter.
func (pid ParamID) Abbrev() string {
	if pid < 0 || pid >= ParamIDN {
		return "PARAM_INVALID"
	}
	return paramTab[pid].Abbrev
}

// Default returns the declared default value and whether one exists;
// a parameter without a default starts unset.
func (pid ParamID) Default() (int64, bool) {
	return paramTab[pid].Def, paramTab[pid].HasDef
}

// Report returns true if the parameter is reported in a TRLP line at each
// trial start.
func (pid ParamID) Report() bool {
	return paramTab[pid].Report
}

// Required returns true if the host must set the parameter before a trial
// may be released.
func (pid ParamID) Required() bool {
	return paramTab[pid].Required
}

var paramByAbbrev map[string]ParamID

func init() {
	paramByAbbrev = make(map[string]ParamID, ParamIDN)
	for pid := ParamID(0); pid < ParamIDN; pid++ {
		paramByAbbrev[paramTab[pid].Abbrev] = pid
	}
}

// ParamByAbbrev resolves a wire abbreviation (e.g. from a host SET command)
// to its ParamID.
func ParamByAbbrev(ab string) (ParamID, bool) {
	pid, ok := paramByAbbrev[ab]
	return pid, ok
}

// ResultID is the closed key type for the trial results.
type ResultID int32

const (
	// Resp is the response identity result (write-once per trial).
	Resp ResultID = iota

	// Outc is the trial outcome result.
	Outc

	ResultIDN
)

var KiT_ResultID = kit.Enums.AddEnum(ResultIDN, kit.NotBitFlag, nil)

var resultTab = [ResultIDN]string{
	Resp: "RESP",
	Outc: "OUTC",
}

func (rid ResultID) String() string {
	return rid.Abbrev()
}

// Abbrev returns the TrialSpeak wire abbreviation for this result.
func (rid ResultID) Abbrev() string {
	if rid < 0 || rid >= ResultIDN {
		return "RESULT_INVALID"
	}
	return resultTab[rid]
}
