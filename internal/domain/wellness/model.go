package wellness

import "time"

// Mood is the closed set of feelings a patient can record.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodCalm     Mood = "calm"
	MoodSad      Mood = "sad"
	MoodAnxious  Mood = "anxious"
	MoodAngry    Mood = "angry"
	MoodConfused Mood = "confused"
	MoodScared   Mood = "scared"
)

var validMoods = map[Mood]bool{
	MoodHappy: true, MoodCalm: true, MoodSad: true, MoodAnxious: true,
	MoodAngry: true, MoodConfused: true, MoodScared: true,
}

// Valid reports whether m is a known mood.
func (m Mood) Valid() bool { return validMoods[m] }

// Moods lists every recordable mood in display order.
func Moods() []Mood {
	return []Mood{
		MoodHappy, MoodCalm, MoodSad, MoodAnxious,
		MoodAngry, MoodConfused, MoodScared,
	}
}

// MoodEntry is one append-only mood observation.
type MoodEntry struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patient_id"`
	Mood       Mood      `json:"mood"`
	Intensity  int       `json:"intensity"` // 1..10
	Note       string    `json:"note,omitempty"`
	Triggers   []string  `json:"triggers,omitempty"`
	TimeOfDay  string    `json:"time_of_day,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	RecordedBy string    `json:"recorded_by,omitempty"`
}

// Severity grades a behavior episode.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

var validSeverities = map[Severity]bool{
	SeverityMild: true, SeverityModerate: true, SeveritySevere: true,
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool { return validSeverities[s] }

// BehaviorLog is one observed behavior episode with any interventions used.
type BehaviorLog struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patient_id"`
	Behavior      string    `json:"behavior"`
	Severity      Severity  `json:"severity"`
	Description   string    `json:"description,omitempty"`
	Interventions []string  `json:"interventions,omitempty"`
	Date          time.Time `json:"date"`
}
