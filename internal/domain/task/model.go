package task

import "time"

// Status is the completion state of a routine task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
)

var validStatuses = map[Status]bool{
	StatusPending: true, StatusCompleted: true, StatusSkipped: true,
}

// Valid reports whether s is a known task status.
func (s Status) Valid() bool { return validStatuses[s] }

// Task is one item in a patient's daily routine.
type Task struct {
	ID            string     `json:"id"`
	PatientID     string     `json:"patient_id"`
	Title         string     `json:"title"`
	Icon          string     `json:"icon,omitempty"`
	ScheduledTime string     `json:"scheduled_time,omitempty"` // "HH:MM"
	TimeOfDay     string     `json:"time_of_day,omitempty"`
	Status        Status     `json:"status"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// Toggled returns the task flipped between pending and completed. Completing
// stamps CompletedAt; un-completing clears it. Skipped tasks toggle to
// completed the same way pending ones do.
func (t Task) Toggled(now time.Time) Task {
	if t.Status == StatusCompleted {
		t.Status = StatusPending
		t.CompletedAt = nil
		return t
	}
	t.Status = StatusCompleted
	t.CompletedAt = &now
	return t
}

// Appointment is an upcoming provider visit shown on the dashboards.
type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`
	Title     string `json:"title"`
	Provider  string `json:"provider,omitempty"`
	Location  string `json:"location,omitempty"`
	Date      string `json:"date"` // "2006-01-02"
	Time      string `json:"time"` // "HH:MM"
}

// Reminder is a recurring prompt (medication, hydration, appointment, ...)
// delivered by the portal shell.
type Reminder struct {
	ID         string   `json:"id"`
	PatientID  string   `json:"patient_id"`
	Type       string   `json:"type"`
	Title      string   `json:"title"`
	Message    string   `json:"message,omitempty"`
	Time       string   `json:"time"` // "HH:MM"
	DaysOfWeek []string `json:"days_of_week,omitempty"`
	IsActive   bool     `json:"is_active"`
}

// CountByStatus counts tasks with the given status.
func CountByStatus(tasks []Task, status Status) int {
	n := 0
	for _, t := range tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}

// Pending returns tasks that are not yet completed, preserving order.
func Pending(tasks []Task) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Status != StatusCompleted {
			out = append(out, t)
		}
	}
	return out
}
