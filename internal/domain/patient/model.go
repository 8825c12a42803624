package patient

import (
	"strings"

	"github.com/carecompanion/carecompanion/internal/domain/wellness"
)

// Stage is the coarse dementia severity classification used to adjust the
// portal's tone and complexity.
type Stage string

const (
	StageEarly    Stage = "early"
	StageModerate Stage = "moderate"
	StageSevere   Stage = "severe"
)

var validStages = map[Stage]bool{
	StageEarly: true, StageModerate: true, StageSevere: true,
}

// Valid reports whether s is a known dementia stage.
func (s Stage) Valid() bool { return validStages[s] }

// FamiliarFace is one person shown in the familiar-faces slideshow.
type FamiliarFace struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	PhotoURL     string `json:"photo_url,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// EmergencyContact is the first person to call.
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone"`
}

// Patient is the person receiving care.
type Patient struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	PreferredName    string           `json:"preferred_name,omitempty"`
	Stage            Stage            `json:"stage"`
	Address          string           `json:"address,omitempty"`
	PhotoURL         string           `json:"photo_url,omitempty"`
	FamiliarFaces    []FamiliarFace   `json:"familiar_faces,omitempty"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	Affirmation      string           `json:"affirmation,omitempty"`
}

// DisplayName returns the preferred name, falling back to the first name.
func (p Patient) DisplayName() string {
	if p.PreferredName != "" {
		return p.PreferredName
	}
	return p.FirstName
}

// SplitAffirmation breaks the affirmation into the headline (first
// sentence) and the rest, with the home-screen defaults when unset.
func (p Patient) SplitAffirmation() (headline, rest string) {
	if p.Affirmation == "" {
		return "You are safe", "You are loved. You are at home."
	}
	i := strings.IndexByte(p.Affirmation, '.')
	if i < 0 {
		return p.Affirmation, ""
	}
	return p.Affirmation[:i], strings.TrimSpace(p.Affirmation[i+1:])
}

// DashboardStats is the per-patient summary card block on the caregiver
// dashboard. Derived at seed time; a persisted system would recompute it.
type DashboardStats struct {
	TasksCompleted           int                `json:"tasks_completed"`
	TasksTotal               int                `json:"tasks_total"`
	MedicationsTaken         int                `json:"medications_taken"`
	MedicationsTotal         int                `json:"medications_total"`
	MedicationsAdherenceRate int                `json:"medications_adherence_rate"` // 0..100
	MoodToday                wellness.Mood      `json:"mood_today,omitempty"`
	MoodTrend                wellness.MoodTrend `json:"mood_trend,omitempty"`
	SleepHours               float64            `json:"sleep_hours,omitempty"`
	SleepQuality             string             `json:"sleep_quality,omitempty"`
}
