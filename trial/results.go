// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trial

// Results holds the per-trial results, reset to unset at every trial
// start.  The response identity is write-once: the first detected
// response wins and later ticks in the same trial cannot change it.
// A result never written reports on the wire as 0, which downstream
// analysis reads as "no data" (e.g. a trial spoiled by a premature
// response never reaches the response window, so both results stay
// unset).
type Results struct {
	Res [ResultIDN]Value `desc:"result values for the current trial"`
}

// NewResults returns a result store with everything unset.
func NewResults() *Results {
	return &Results{}
}

// Reset returns every result to unset.  Called at trial start.
func (rs *Results) Reset() {
	for rid := ResultID(0); rid < ResultIDN; rid++ {
		rs.Res[rid] = Value{}
	}
}

// Get returns a result value and whether it has been written this trial.
func (rs *Results) Get(rid ResultID) (int64, bool) {
	v := rs.Res[rid]
	return v.Val, v.Set
}

// Val returns a result value, or 0 when unset (the wire sentinel).
func (rs *Results) Val(rid ResultID) int64 {
	return rs.Res[rid].Val
}

// IsSet returns whether a result has been written this trial.
func (rs *Results) IsSet(rid ResultID) bool {
	return rs.Res[rid].Set
}

// Set writes a result unconditionally.  Only the epoch that owns the
// result calls this.
func (rs *Results) Set(rid ResultID, v int64) {
	rs.Res[rid] = Value{Val: v, Set: true}
}

// SetOnce writes a result only if it is still unset, and reports whether
// it wrote.  This is the write-once guarantee for the response identity.
func (rs *Results) SetOnce(rid ResultID, v int64) bool {
	if rs.Res[rid].Set {
		return false
	}
	rs.Set(rid, v)
	return true
}

// Response returns the recorded response identity and whether one has
// been recorded.
func (rs *Results) Response() (Response, bool) {
	v, set := rs.Get(Resp)
	return Response(v), set
}

// Outcome returns the recorded outcome and whether one has been recorded.
func (rs *Results) Outcome() (Outcome, bool) {
	v, set := rs.Get(Outc)
	return Outcome(v), set
}
