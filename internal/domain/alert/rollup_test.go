package alert

import "testing"

func TestRollup_RedWins(t *testing.T) {
	safety := []SafetyAlert{
		{Category: CategoryRed, IsResolved: false},
		{Category: CategoryGreen},
	}
	if got := Rollup(safety, nil); got != RiskNeedsAttention {
		t.Errorf("Rollup() = %q, want needs-attention", got)
	}
}

func TestRollup_ResolvedRedDoesNotCount(t *testing.T) {
	safety := []SafetyAlert{{Category: CategoryRed, IsResolved: true}}
	if got := Rollup(safety, nil); got != RiskStable {
		t.Errorf("Rollup() = %q, want stable once red is resolved", got)
	}
}

func TestRollup_OpenYellowMeansMonitor(t *testing.T) {
	safety := []SafetyAlert{{Category: CategoryYellow, IsResolved: false}}
	if got := Rollup(safety, nil); got != RiskMonitor {
		t.Errorf("Rollup() = %q, want monitor", got)
	}
}

func TestRollup_UnreadAlertMeansMonitor(t *testing.T) {
	alerts := []Alert{{ID: "a1", IsRead: false}}
	if got := Rollup(nil, alerts); got != RiskMonitor {
		t.Errorf("Rollup() = %q, want monitor on unread alert", got)
	}
}

func TestRollup_AllQuietIsStable(t *testing.T) {
	safety := []SafetyAlert{{Category: CategoryGreen}}
	alerts := []Alert{{ID: "a1", IsRead: true}}
	if got := Rollup(safety, alerts); got != RiskStable {
		t.Errorf("Rollup() = %q, want stable", got)
	}
}

func TestCountUnread(t *testing.T) {
	alerts := []Alert{{IsRead: true}, {IsRead: false}, {IsRead: false}}
	if got := CountUnread(alerts); got != 2 {
		t.Errorf("CountUnread() = %d, want 2", got)
	}
}

func TestCountUnresolved(t *testing.T) {
	safety := []SafetyAlert{
		{Category: CategoryRed, IsResolved: false},
		{Category: CategoryRed, IsResolved: true},
		{Category: CategoryYellow, IsResolved: false},
	}
	if got := CountUnresolved(safety, CategoryRed); got != 1 {
		t.Errorf("CountUnresolved(red) = %d, want 1", got)
	}
	if got := CountUnresolved(safety, CategoryYellow); got != 1 {
		t.Errorf("CountUnresolved(yellow) = %d, want 1", got)
	}
	if got := CountUnresolved(safety, CategoryGreen); got != 0 {
		t.Errorf("CountUnresolved(green) = %d, want 0", got)
	}
}
