package engagement

import (
	"testing"
	"time"
)

func TestPhaseDuration(t *testing.T) {
	if got := PhaseDuration(PhaseInhale); got != 4*time.Second {
		t.Errorf("PhaseDuration(inhale) = %v, want 4s", got)
	}
	if got := PhaseDuration(PhaseHold); got != 2*time.Second {
		t.Errorf("PhaseDuration(hold) = %v, want 2s", got)
	}
	if got := PhaseDuration(PhaseExhale); got != 4*time.Second {
		t.Errorf("PhaseDuration(exhale) = %v, want 4s", got)
	}
}

func TestNextPhase_Cycles(t *testing.T) {
	phase := PhaseInhale
	want := []BreathingPhase{PhaseHold, PhaseExhale, PhaseInhale, PhaseHold}
	for i, w := range want {
		phase = NextPhase(phase)
		if phase != w {
			t.Fatalf("step %d = %q, want %q", i, phase, w)
		}
	}
}
