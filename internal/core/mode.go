package core

import "fmt"

const (
	// PenaltyWorkSeconds is subtracted from accumulated work time by an
	// explicit penalty, undoing roughly five minutes of accidental accrual.
	PenaltyWorkSeconds = 300.0

	// PenaltyPlaySeconds is the proportional balance deduction at the
	// accrual rate.
	PenaltyPlaySeconds = PenaltyWorkSeconds * AccrualRate
)

// RequestMode switches the snapshot to the target mode. Entering PLAY with a
// zero balance is rejected and the snapshot is returned unchanged.
//
// A mode switch is a reconciliation boundary: callers must reconcile up to
// nowMillis under the old mode first, then switch. The session enforces that
// ordering; this function only records the switch instant.
func RequestMode(s Snapshot, target Mode, nowMillis int64) (Snapshot, error) {
	if !target.IsValid() {
		return s, fmt.Errorf("unknown mode %q", target)
	}
	if target == ModePlay && s.PlayBalanceSeconds <= 0 {
		return s, ErrNoPlayBalance
	}
	s.Mode = target
	s.LastTickTimestamp = nowMillis
	return s, nil
}

// ApplyPenalty unconditionally subtracts the fixed penalty from both
// counters. The two subtractions are independent: one hitting its zero floor
// does not reduce the other's deduction.
func ApplyPenalty(s Snapshot) Snapshot {
	s.WorkElapsedSeconds -= PenaltyWorkSeconds
	if s.WorkElapsedSeconds < 0 {
		s.WorkElapsedSeconds = 0
	}
	s.PlayBalanceSeconds -= PenaltyPlaySeconds
	if s.PlayBalanceSeconds < 0 {
		s.PlayBalanceSeconds = 0
	}
	return s
}
