package core

// AccrualRate converts work seconds into play-balance seconds: one minute of
// work earns half a minute of play.
const AccrualRate = 0.5

// Reconcile applies the wall-clock time elapsed since the snapshot's last
// tick and returns the updated snapshot. ended is true when a PLAY decay
// drained the balance to zero in this call, which also forces the mode to
// NOTHING in the same step.
//
// A non-positive delta (clock moved backward, duplicate call with the same
// timestamp) returns the input unchanged, which makes reconciliation
// idempotent: a second call with the same nowMillis is a no-op.
func Reconcile(s Snapshot, nowMillis int64) (Snapshot, bool) {
	elapsed := float64((nowMillis - s.LastTickTimestamp) / 1000)
	if elapsed <= 0 {
		return s, false
	}

	ended := false
	switch s.Mode {
	case ModeWork:
		s.WorkElapsedSeconds += elapsed
		s.PlayBalanceSeconds += elapsed * AccrualRate
	case ModePlay:
		s.PlayBalanceSeconds -= elapsed
		if s.PlayBalanceSeconds <= 0 {
			s.PlayBalanceSeconds = 0
			s.Mode = ModeNothing
			ended = true
		}
	case ModeNothing:
		// Time passes, nothing accrues or decays.
	}

	s.LastTickTimestamp = nowMillis
	return s, ended
}
