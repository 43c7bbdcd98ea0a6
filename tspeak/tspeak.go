// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tspeak implements the TrialSpeak wire protocol: the timestamped,
line-oriented log a rig emits for the host, and the small command language
the host sends back.

Outbound lines (timestamps are integer ms on the rig clock):

	<time> TRL_RELEASED        trial start permitted
	<time> TRL_START           trial begins
	<time> TRLP <ABBREV> <v>   one line per reported parameter at trial start
	<time> TRLR <ABBREV> <v>   one line per result at inter-trial interval
	<time> EV <name>           behavioral event marker (EV R_L = reward)
	<time> ERR <text>          anomaly report; the rig continues

Inbound commands:

	SET <ABBREV> <value>       set a pending trial parameter
	RELEASE_TRL                permit the next trial to start

The exact tokens are load-bearing: downstream analysis parses these lines,
so they must not change.
*/
package tspeak

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emer/ardufsm/tstate"
	"github.com/goki/ki/kit"
)

// TrialSpeak boolean wire tokens.  Booleans deliberately avoid 0 and 1 so
// that an unset or garbled value can never pass as a valid boolean.
const (
	Yes int64 = 3
	No  int64 = 2
)

// EvReward is the event name emitted when a reward is delivered.
const EvReward = "R_L"

// Writer emits TrialSpeak log lines to an io.Writer (a serial port, a log
// file, a test buffer).  A nil Writer or nil destination drops all output,
// so wiring a silent rig needs no conditionals at the call sites.
type Writer struct {
	W io.Writer `view:"-" desc:"destination for protocol lines; nil silences output"`
}

// NewWriter returns a Writer emitting to w (which may be nil).
func NewWriter(w io.Writer) *Writer {
	return &Writer{W: w}
}

func (tw *Writer) emit(format string, args ...interface{}) {
	if tw == nil || tw.W == nil {
		return
	}
	fmt.Fprintf(tw.W, format, args...)
}

// Released reports that the pending trial has been released.
func (tw *Writer) Released(t tstate.Time) {
	tw.emit("%d TRL_RELEASED\n", t)
}

// TrialStart reports that a trial has begun.
func (tw *Writer) TrialStart(t tstate.Time) {
	tw.emit("%d TRL_START\n", t)
}

// Param reports one trial parameter at trial start.
func (tw *Writer) Param(t tstate.Time, abbrev string, val int64) {
	tw.emit("%d TRLP %s %d\n", t, abbrev, val)
}

// Result reports one trial result at inter-trial-interval entry.
func (tw *Writer) Result(t tstate.Time, abbrev string, val int64) {
	tw.emit("%d TRLR %s %d\n", t, abbrev, val)
}

// Event reports a behavioral event marker such as EvReward.
func (tw *Writer) Event(t tstate.Time, name string) {
	tw.emit("%d EV %s\n", t, name)
}

// Error reports an anomaly; the rig logs and continues.
func (tw *Writer) Error(t tstate.Time, text string) {
	tw.emit("%d ERR %s\n", t, text)
}

// CmdKind enumerates the host commands a rig accepts.
type CmdKind int32

const (
	// CmdSet sets a pending trial parameter by wire abbreviation.
	CmdSet CmdKind = iota

	// CmdRelease permits the next trial to start.
	CmdRelease

	CmdKindN
)

var KiT_CmdKind = kit.Enums.AddEnum(CmdKindN, kit.NotBitFlag, nil)

func (ck CmdKind) String() string {
	switch ck {
	case CmdSet:
		return "SET"
	case CmdRelease:
		return "RELEASE_TRL"
	}
	return "CmdInvalid"
}

// Cmd is one parsed host command.
type Cmd struct {
	Kind   CmdKind `desc:"which command"`
	Abbrev string  `desc:"parameter wire abbreviation, for CmdSet"`
	Val    int64   `desc:"parameter value, for CmdSet"`
}

// ParseCommand parses one line of host input.  Unknown verbs, wrong
// arities, and non-integer values are errors; the caller decides whether
// to log and drop or to fail.
func ParseCommand(line string) (Cmd, error) {
	fs := strings.Fields(line)
	if len(fs) == 0 {
		return Cmd{}, errors.New("tspeak: empty command")
	}
	switch fs[0] {
	case "SET":
		if len(fs) != 3 {
			return Cmd{}, fmt.Errorf("tspeak: SET wants 2 arguments, got %q", line)
		}
		v, err := strconv.ParseInt(fs[2], 10, 64)
		if err != nil {
			return Cmd{}, fmt.Errorf("tspeak: SET %s: bad value %q", fs[1], fs[2])
		}
		return Cmd{Kind: CmdSet, Abbrev: fs[1], Val: v}, nil
	case "RELEASE_TRL":
		if len(fs) != 1 {
			return Cmd{}, fmt.Errorf("tspeak: RELEASE_TRL takes no arguments, got %q", line)
		}
		return Cmd{Kind: CmdRelease}, nil
	}
	return Cmd{}, fmt.Errorf("tspeak: unknown command %q", fs[0])
}
