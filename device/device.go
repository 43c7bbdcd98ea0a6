// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package device defines the narrow hardware surface the trial core drives:
stimulus devices advanced one tick at a time under a policy index, a
response sensor, and a binary output line for the reward valve.

The core owns an ordered, fixed collection of Handles and iterates it once
per stimulus tick in a deterministic order -- "simultaneous" actuation is
one short action per device per tick, not concurrency.  Device internals
(step ramps, tone generation, valve driver) stay behind these interfaces;
the simulated implementations here are enough to run full sessions and
tests without hardware.
*/
package device

// Handle is a stimulus device as the core sees it.  The policy index
// comes from a latched trial parameter (e.g. STPRIDX) and selects which
// of the device's actions to perform; what an index means is the
// device's business.
type Handle interface {
	// Tick advances the device by one scheduler tick under the given
	// policy index.  Must be short and must not block.
	Tick(policy int)

	// Finish returns the device to idle.  Called once at stimulus-epoch
	// exit for every handle, in collection order.
	Finish()
}

// Sensor reports whether the response signal (the lick detector) is
// active right now.  Sampling below this abstraction -- debouncing,
// thresholds -- is the sensor's business.
type Sensor interface {
	Sample() bool
}

// Output is a binary output line, e.g. the reward solenoid.  Set is
// level-triggered and idempotent: asserting an asserted line is a no-op.
type Output interface {
	Set(on bool)
}
