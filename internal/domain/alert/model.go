package alert

import "time"

// Alert is a caregiver-facing notification. Alerts are marked read in place
// and never hard-deleted.
type Alert struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	Severity  string    `json:"severity,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Category is the three-tier safety risk band.
type Category string

const (
	CategoryRed    Category = "red"
	CategoryYellow Category = "yellow"
	CategoryGreen  Category = "green"
)

var validCategories = map[Category]bool{
	CategoryRed: true, CategoryYellow: true, CategoryGreen: true,
}

// Valid reports whether c is a known safety category.
func (c Category) Valid() bool { return validCategories[c] }

// SafetyAlert drives the risk-profile display, independent of the generic
// notification Alert type.
type SafetyAlert struct {
	ID         string   `json:"id"`
	PatientID  string   `json:"patient_id"`
	Title      string   `json:"title"`
	Detail     string   `json:"detail,omitempty"`
	Category   Category `json:"category"`
	IsResolved bool     `json:"is_resolved"`
}

// CountUnread counts alerts not yet marked read.
func CountUnread(alerts []Alert) int {
	n := 0
	for _, a := range alerts {
		if !a.IsRead {
			n++
		}
	}
	return n
}

// CountUnresolved counts safety alerts in the given band that are still open.
func CountUnresolved(alerts []SafetyAlert, c Category) int {
	n := 0
	for _, a := range alerts {
		if a.Category == c && !a.IsResolved {
			n++
		}
	}
	return n
}
