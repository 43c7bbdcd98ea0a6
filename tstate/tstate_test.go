// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tstate

import "testing"

// countState records lifecycle calls, optionally latching a duration on
// entry and requesting a stop on a given tick, the way real epochs do.
type countState struct {
	Base
	enters     int
	ticks      int
	exits      int
	durOnEnter Time // if nonzero, Enter latches this into Tmr.Dur
	stopOnTick int  // if nonzero, the Nth Tick calls Stop
}

func (cs *countState) Enter() {
	cs.enters++
	if cs.durOnEnter != 0 {
		cs.Tmr.Dur = cs.durOnEnter
	}
}

func (cs *countState) Tick() {
	cs.ticks++
	if cs.stopOnTick != 0 && cs.ticks == cs.stopOnTick {
		cs.Tmr.Stop()
	}
}

func (cs *countState) Exit() {
	cs.exits++
}

func TestAdvanceLifecycle(t *testing.T) {
	cs := &countState{}
	cs.Tmr.Dur = 100

	calls := 0
	adv := func(now Time) {
		Advance(cs, now)
		calls++
		if got := cs.enters + cs.ticks + cs.exits; got != calls {
			t.Errorf("call %d at t=%d: %d actions fired, want exactly one per call", calls, now, got)
		}
		if cs.Tmr.LastTime != now {
			t.Errorf("call %d: LastTime = %d, want %d", calls, cs.Tmr.LastTime, now)
		}
	}

	adv(1000)
	if cs.enters != 1 || !cs.Tmr.Active || cs.Tmr.Entry != 1000 {
		t.Errorf("first call: enters=%d Active=%v Entry=%d, want 1 true 1000", cs.enters, cs.Tmr.Active, cs.Tmr.Entry)
	}
	for now := Time(1010); now < 1100; now += 10 {
		adv(now)
	}
	if cs.ticks != 9 || cs.exits != 0 {
		t.Errorf("before deadline: ticks=%d exits=%d, want 9 0", cs.ticks, cs.exits)
	}
	adv(1100)
	if cs.exits != 1 || cs.Tmr.Active {
		t.Errorf("at deadline: exits=%d Active=%v, want 1 false", cs.exits, cs.Tmr.Active)
	}
}

func TestAdvanceRearm(t *testing.T) {
	cs := &countState{}
	cs.Tmr.Dur = 10

	Advance(cs, 0)  // enter
	Advance(cs, 50) // past deadline: exit
	if cs.enters != 1 || cs.exits != 1 {
		t.Fatalf("first span: enters=%d exits=%d, want 1 1", cs.enters, cs.exits)
	}
	Advance(cs, 60) // re-enter
	if cs.enters != 2 {
		t.Errorf("after re-arm: enters=%d, want 2", cs.enters)
	}
	if cs.Tmr.Entry != 60 {
		t.Errorf("second span Entry = %d, want 60", cs.Tmr.Entry)
	}
	Advance(cs, 70) // second deadline
	if cs.exits != 2 {
		t.Errorf("second span: exits=%d, want 2", cs.exits)
	}
}

func TestAdvanceZeroDur(t *testing.T) {
	cs := &countState{}
	Advance(cs, 5)
	if cs.enters != 1 {
		t.Fatalf("enters=%d, want 1", cs.enters)
	}
	Advance(cs, 5)
	if cs.exits != 1 || cs.ticks != 0 {
		t.Errorf("zero duration: exits=%d ticks=%d, want exit on first call after entry with no ticks", cs.exits, cs.ticks)
	}
}

func TestAdvanceStop(t *testing.T) {
	cs := &countState{stopOnTick: 2}
	cs.Tmr.Dur = 1000000 // deadline effectively never

	Advance(cs, 0) // enter
	Advance(cs, 1) // tick 1
	Advance(cs, 2) // tick 2: requests stop
	Advance(cs, 3) // exit via stop
	if cs.exits != 1 {
		t.Errorf("exits=%d, want 1 from stop request well before deadline", cs.exits)
	}
	if cs.ticks != 2 {
		t.Errorf("ticks=%d, want 2", cs.ticks)
	}
	// stop flag must clear on the next entry, not leak into the new span
	cs.stopOnTick = 0
	Advance(cs, 4) // re-enter
	Advance(cs, 5) // must tick, not exit
	if cs.ticks != 3 {
		t.Errorf("after re-entry: ticks=%d, want 3 (stale stop flag forced an exit)", cs.ticks)
	}
}

func TestEnterLatchesDur(t *testing.T) {
	cs := &countState{durOnEnter: 20}
	cs.Tmr.Dur = 5 // stale value from a previous configuration

	Advance(cs, 100) // enter: latches Dur = 20
	Advance(cs, 110) // inside latched window: tick
	if cs.exits != 0 {
		t.Fatalf("exited at stale deadline; Dur latched in Enter was not honored")
	}
	Advance(cs, 120) // latched deadline
	if cs.exits != 1 {
		t.Errorf("exits=%d, want 1 at Entry+latched Dur", cs.exits)
	}
}

func TestTimerDeadlineRemaining(t *testing.T) {
	cs := &countState{}
	cs.Tmr.Dur = 300
	Advance(cs, 1000)
	if dl := cs.Tmr.Deadline(); dl != 1300 {
		t.Errorf("Deadline = %d, want 1300", dl)
	}
	Advance(cs, 1250)
	if rem := cs.Tmr.Remaining(); rem != 50 {
		t.Errorf("Remaining = %d, want 50", rem)
	}
}
