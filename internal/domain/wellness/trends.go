package wellness

import "time"

// MoodTrend summarizes whether recent mood intensity is moving up or down.
type MoodTrend string

const (
	TrendImproving MoodTrend = "improving"
	TrendStable    MoodTrend = "stable"
	TrendDeclining MoodTrend = "declining"
)

// AverageIntensity returns the mean intensity of the entries, or 0 when
// there are none.
func AverageIntensity(entries []MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Intensity
	}
	return float64(sum) / float64(len(entries))
}

// CountByMood tallies entries per mood.
func CountByMood(entries []MoodEntry) map[Mood]int {
	counts := make(map[Mood]int, len(validMoods))
	for _, e := range entries {
		counts[e.Mood]++
	}
	return counts
}

// LatestMood returns the most recent entry by timestamp, or nil.
func LatestMood(entries []MoodEntry) *MoodEntry {
	var latest *MoodEntry
	for i := range entries {
		if latest == nil || entries[i].Timestamp.After(latest.Timestamp) {
			latest = &entries[i]
		}
	}
	return latest
}

// EntriesSince filters entries recorded at or after cutoff.
func EntriesSince(entries []MoodEntry, cutoff time.Time) []MoodEntry {
	var out []MoodEntry
	for _, e := range entries {
		if !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// TrendFor compares the average intensity of the most recent half of the
// window against the older half. Fewer than four entries reads as stable.
func TrendFor(entries []MoodEntry, now time.Time, window time.Duration) MoodTrend {
	recent := EntriesSince(entries, now.Add(-window))
	if len(recent) < 4 {
		return TrendStable
	}
	mid := now.Add(-window / 2)
	var older, newer []MoodEntry
	for _, e := range recent {
		if e.Timestamp.Before(mid) {
			older = append(older, e)
		} else {
			newer = append(newer, e)
		}
	}
	if len(older) == 0 || len(newer) == 0 {
		return TrendStable
	}
	diff := AverageIntensity(newer) - AverageIntensity(older)
	switch {
	case diff >= 0.5:
		return TrendImproving
	case diff <= -0.5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// CountBySeverity tallies behavior logs per severity grade.
func CountBySeverity(logs []BehaviorLog) map[Severity]int {
	counts := make(map[Severity]int, len(validSeverities))
	for _, l := range logs {
		counts[l.Severity]++
	}
	return counts
}
