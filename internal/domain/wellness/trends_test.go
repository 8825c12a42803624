package wellness

import (
	"testing"
	"time"
)

var trendNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// entryAt places an entry n hours before trendNow.
func entryAt(hoursAgo int, intensity int) MoodEntry {
	return MoodEntry{
		Mood:      MoodCalm,
		Intensity: intensity,
		Timestamp: trendNow.Add(-time.Duration(hoursAgo) * time.Hour),
	}
}

func TestAverageIntensity(t *testing.T) {
	entries := []MoodEntry{{Intensity: 4}, {Intensity: 8}}
	if got := AverageIntensity(entries); got != 6 {
		t.Errorf("AverageIntensity() = %v, want 6", got)
	}
	if got := AverageIntensity(nil); got != 0 {
		t.Errorf("AverageIntensity(nil) = %v, want 0", got)
	}
}

func TestLatestMood(t *testing.T) {
	entries := []MoodEntry{entryAt(48, 3), entryAt(1, 9), entryAt(24, 5)}
	got := LatestMood(entries)
	if got == nil || got.Intensity != 9 {
		t.Errorf("LatestMood() = %v, want the 1h-old entry", got)
	}
	if LatestMood(nil) != nil {
		t.Error("LatestMood(nil) != nil")
	}
}

func TestCountByMood(t *testing.T) {
	entries := []MoodEntry{
		{Mood: MoodHappy}, {Mood: MoodHappy}, {Mood: MoodAnxious},
	}
	counts := CountByMood(entries)
	if counts[MoodHappy] != 2 || counts[MoodAnxious] != 1 {
		t.Errorf("CountByMood() = %v, want happy:2 anxious:1", counts)
	}
}

// ---------------------------------------------------------------------------
// trend grading over a 7-day window
// ---------------------------------------------------------------------------

const week = 7 * 24 * time.Hour

func TestTrendFor_Improving(t *testing.T) {
	// Older half averages 3, newer half averages 8.
	entries := []MoodEntry{
		entryAt(6*24, 3), entryAt(5*24, 3),
		entryAt(24, 8), entryAt(12, 8),
	}
	if got := TrendFor(entries, trendNow, week); got != TrendImproving {
		t.Errorf("TrendFor() = %q, want improving", got)
	}
}

func TestTrendFor_Declining(t *testing.T) {
	entries := []MoodEntry{
		entryAt(6*24, 8), entryAt(5*24, 8),
		entryAt(24, 3), entryAt(12, 3),
	}
	if got := TrendFor(entries, trendNow, week); got != TrendDeclining {
		t.Errorf("TrendFor() = %q, want declining", got)
	}
}

func TestTrendFor_StableWithinThreshold(t *testing.T) {
	entries := []MoodEntry{
		entryAt(6*24, 6), entryAt(5*24, 6),
		entryAt(24, 6), entryAt(12, 6),
	}
	if got := TrendFor(entries, trendNow, week); got != TrendStable {
		t.Errorf("TrendFor() = %q, want stable", got)
	}
}

func TestTrendFor_TooFewEntries(t *testing.T) {
	entries := []MoodEntry{entryAt(24, 2), entryAt(12, 9)}
	if got := TrendFor(entries, trendNow, week); got != TrendStable {
		t.Errorf("TrendFor(2 entries) = %q, want stable", got)
	}
}

func TestTrendFor_AllEntriesInOneHalf(t *testing.T) {
	entries := []MoodEntry{
		entryAt(1, 8), entryAt(2, 8), entryAt(3, 2), entryAt(4, 2),
	}
	if got := TrendFor(entries, trendNow, week); got != TrendStable {
		t.Errorf("TrendFor(one-sided window) = %q, want stable", got)
	}
}

func TestTrendFor_IgnoresEntriesOutsideWindow(t *testing.T) {
	entries := []MoodEntry{
		entryAt(30*24, 1), entryAt(20*24, 1), // stale, outside the week
		entryAt(24, 6), entryAt(12, 6), entryAt(36, 6),
	}
	if got := TrendFor(entries, trendNow, week); got != TrendStable {
		t.Errorf("TrendFor() = %q, want stable once stale entries drop out", got)
	}
}

func TestCountBySeverity(t *testing.T) {
	logs := []BehaviorLog{
		{Severity: SeveritySevere},
		{Severity: SeverityMild},
		{Severity: SeverityMild},
	}
	counts := CountBySeverity(logs)
	if counts[SeveritySevere] != 1 || counts[SeverityMild] != 2 || counts[SeverityModerate] != 0 {
		t.Errorf("CountBySeverity() = %v, want severe:1 mild:2", counts)
	}
}
