// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ardufsm is the overall repository for a Go implementation of the
ArduFSM family of behavioral experiment controllers: a tick-driven
finite-state machine that presents stimuli, watches a response sensor,
delivers or withholds reward, and reports a time-stamped trial log in the
TrialSpeak line protocol.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* tstate: the generic timed-state lifecycle engine (one-shot entry,
per-tick action, one-shot exit, duration-based auto-transition) that every
long-running trial epoch is built on.

* trial: the trial data model -- latched parameters, write-once results,
the phase / response / outcome enums, and the trial context shared by all
epochs.

* tspeak: the TrialSpeak wire protocol -- emitting the timestamped
TRL_START / TRLP / TRLR / EV log lines and parsing the SET / RELEASE_TRL
commands a host sends back.

* device: the device-handle interface the stimulus epoch drives (advance
one tick under a policy index, clean up on epoch exit), with simulated
steppers, speakers, valve lines and response sensors for testing and for
running sessions without hardware.

* states: the concrete trial epochs (stimulus period, response window,
reward, post-reward pause, error timeout, inter-trial interval) and the
per-tick dispatcher that routes the current phase to them.

* examples: compile into runnable programs. examples/multisens runs a full
simulated go / nogo session -- trial scheduling, the wire log, trial and
session tables and plots, with a GUI or headless.
*/
package ardufsm
