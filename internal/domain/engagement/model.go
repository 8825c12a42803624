package engagement

import "time"

// Memory is a photo or audio keepsake shown in the memory book.
type Memory struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patient_id"`
	Title      string    `json:"title"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	AudioURL   string    `json:"audio_url,omitempty"`
	Date       string    `json:"date,omitempty"` // free-form, as displayed
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
}

// Document is a flat display record for uploaded paperwork.
type Document struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	FileURL     string    `json:"file_url,omitempty"`
	FileType    string    `json:"file_type,omitempty"`
	FileSize    string    `json:"file_size,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivityType tags the kind of engagement exercise.
type ActivityType string

const (
	ActivityBrainGame    ActivityType = "brain_game"
	ActivityBreathing    ActivityType = "breathing"
	ActivityMusic        ActivityType = "music"
	ActivityPhotoJourney ActivityType = "photo_journey"
	ActivityMovement     ActivityType = "movement"
	ActivityPuzzle       ActivityType = "puzzle"
)

// Activity is a catalog entry on the activities screen.
type Activity struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Type        ActivityType `json:"type"`
	Duration    string       `json:"duration,omitempty"`
}

// ActivitySession is an append-only record of a started activity.
type ActivitySession struct {
	ID            string    `json:"id"`
	ActivityID    string    `json:"activity_id"`
	PatientID     string    `json:"patient_id"`
	ActivityTitle string    `json:"activity_title,omitempty"`
	StartedAt     time.Time `json:"started_at"`
}

// BreathingPhase is one step of the guided breathing cycle.
type BreathingPhase string

const (
	PhaseInhale BreathingPhase = "inhale"
	PhaseHold   BreathingPhase = "hold"
	PhaseExhale BreathingPhase = "exhale"
)

// PhaseDuration returns how long the given phase is held: 4s in, 2s hold,
// 4s out.
func PhaseDuration(p BreathingPhase) time.Duration {
	if p == PhaseHold {
		return 2 * time.Second
	}
	return 4 * time.Second
}

// NextPhase advances the breathing cycle.
func NextPhase(p BreathingPhase) BreathingPhase {
	switch p {
	case PhaseInhale:
		return PhaseHold
	case PhaseHold:
		return PhaseExhale
	default:
		return PhaseInhale
	}
}
