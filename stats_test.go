package cdcl

import "testing"

func TestStatsIncDecision(t *testing.T) {
	s := NewStats()
	s.incDecision()
	s.incDecision()
	if s.Decisions != 2 {
		t.Fatalf("Decisions = %d, want 2", s.Decisions)
	}
}

func TestStatsStopSetsElapsed(t *testing.T) {
	s := NewStats()
	s.Stop()
	if s.Elapsed < 0 {
		t.Fatalf("Elapsed = %s, want non-negative", s.Elapsed)
	}
}

func TestStatsNilIsSafe(t *testing.T) {
	var s *Stats
	s.incDecision()
	s.Stop()
}
