package core

import (
	"errors"
	"testing"
)

func TestRequestModeRejectsPlayOnEmptyBalance(t *testing.T) {
	s := NewSnapshot(baseT)

	got, err := RequestMode(s, ModePlay, baseT+1_000)
	if !errors.Is(err, ErrNoPlayBalance) {
		t.Fatalf("err=%v, want ErrNoPlayBalance", err)
	}
	if !sameTimer(got, s) {
		t.Fatalf("rejected switch mutated snapshot: %+v", got)
	}
}

func TestRequestModeSwitchAnchorsTimestamp(t *testing.T) {
	s := NewSnapshot(baseT)
	s.PlayBalanceSeconds = 30

	got, err := RequestMode(s, ModePlay, baseT+2_000)
	if err != nil {
		t.Fatalf("RequestMode: %v", err)
	}
	if got.Mode != ModePlay {
		t.Fatalf("mode=%s, want PLAY", got.Mode)
	}
	if got.LastTickTimestamp != baseT+2_000 {
		t.Fatalf("lastTick=%d, want switch instant", got.LastTickTimestamp)
	}
}

func TestRequestModeRejectsUnknownMode(t *testing.T) {
	s := NewSnapshot(baseT)
	if _, err := RequestMode(s, Mode("NAP"), baseT); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestApplyPenaltyFloorsIndependently(t *testing.T) {
	s := NewSnapshot(baseT)
	s.WorkElapsedSeconds = 100
	s.PlayBalanceSeconds = 40

	got := ApplyPenalty(s)
	if got.WorkElapsedSeconds != 0 {
		t.Fatalf("work=%v, want 0 (floored)", got.WorkElapsedSeconds)
	}
	if got.PlayBalanceSeconds != 0 {
		t.Fatalf("balance=%v, want 0 (floored)", got.PlayBalanceSeconds)
	}
}

func TestApplyPenaltyAboveFloor(t *testing.T) {
	s := NewSnapshot(baseT)
	s.WorkElapsedSeconds = 1_000
	s.PlayBalanceSeconds = 500

	got := ApplyPenalty(s)
	if got.WorkElapsedSeconds != 700 {
		t.Fatalf("work=%v, want 700", got.WorkElapsedSeconds)
	}
	if got.PlayBalanceSeconds != 350 {
		t.Fatalf("balance=%v, want 350", got.PlayBalanceSeconds)
	}
}

func TestApplyPenaltyOneFloorDoesNotAffectOther(t *testing.T) {
	s := NewSnapshot(baseT)
	s.WorkElapsedSeconds = 50
	s.PlayBalanceSeconds = 500

	got := ApplyPenalty(s)
	if got.WorkElapsedSeconds != 0 {
		t.Fatalf("work=%v, want 0", got.WorkElapsedSeconds)
	}
	if got.PlayBalanceSeconds != 350 {
		t.Fatalf("balance=%v, want 350 (full 150 deduction)", got.PlayBalanceSeconds)
	}
}
