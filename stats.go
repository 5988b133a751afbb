package cdcl

import "time"

// Stats is a lightweight accumulator threaded through the Solver as an
// out-parameter that may be nil (spec.md section 9); it has no bearing
// on correctness.
type Stats struct {
	Decisions int64
	startTime time.Time
	Elapsed   time.Duration
}

// NewStats starts a stats accumulator with its clock running.
func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

func (s *Stats) incDecision() {
	if s == nil {
		return
	}
	s.Decisions++
}

// Stop freezes Elapsed at the time since NewStats. Safe to call on a nil
// receiver.
func (s *Stats) Stop() {
	if s == nil {
		return
	}
	s.Elapsed = time.Since(s.startTime)
}
