package store

import (
	"github.com/carecompanion/carecompanion/internal/domain/careteam"
	"github.com/carecompanion/carecompanion/internal/domain/engagement"
	"github.com/carecompanion/carecompanion/internal/domain/identity"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/domain/patient"
	"github.com/carecompanion/carecompanion/internal/domain/task"
	"github.com/carecompanion/carecompanion/internal/domain/wellness"
)

// Action is the closed vocabulary of state transitions. Every action is
// total: the reducer accepts any payload and malformed or dangling
// references degrade to no-ops, never to errors.
type Action interface {
	// Name labels the action for logging.
	Name() string

	isAction()
}

// SetView moves between the anonymous landing and login screens.
type SetView struct{ View View }

// SetUser replaces the current user.
type SetUser struct{ User identity.User }

// SetRole replaces the selected portal role.
type SetRole struct{ Role identity.Role }

// SetAuthenticated toggles the authenticated flag.
type SetAuthenticated struct{ Authenticated bool }

// Logout resets the whole tree to the initial landing state. No session or
// patient data survives it.
type Logout struct{}

// SelectPatient sets the selected patient id; "" means the aggregate
// multi-patient view. The id is not validated; lookups treat a dangling id
// the same as no selection.
type SelectPatient struct{ PatientID string }

// MarkAlertRead sets the alert's read flag wherever the id is found.
// Idempotent; a missing id is a no-op.
type MarkAlertRead struct{ AlertID string }

// AddMedicationLog appends a dose log to its patient's collection. Strict
// append: a second log for the same dose adds a second row.
type AddMedicationLog struct{ Log medication.Log }

// AddMoodEntry appends a mood observation.
type AddMoodEntry struct{ Entry wellness.MoodEntry }

// AddMemory appends a keepsake to the memory book.
type AddMemory struct{ Memory engagement.Memory }

// UpdateTask replaces a task by id.
type UpdateTask struct{ Task task.Task }

// AddActivitySession appends a started-activity record.
type AddActivitySession struct{ Session engagement.ActivitySession }

// LoadPatients seeds the store with generated patient aggregates and the
// caregiver roster. Refuses to double-seed: it is a no-op whenever patients
// are already loaded.
type LoadPatients struct {
	Patients []patient.Data
	CareTeam []careteam.CareTeamMember
	Goals    []careteam.Goal
}

func (SetView) Name() string            { return "set_view" }
func (SetUser) Name() string            { return "set_user" }
func (SetRole) Name() string            { return "set_role" }
func (SetAuthenticated) Name() string   { return "set_authenticated" }
func (Logout) Name() string             { return "logout" }
func (SelectPatient) Name() string      { return "select_patient" }
func (MarkAlertRead) Name() string      { return "mark_alert_read" }
func (AddMedicationLog) Name() string   { return "add_medication_log" }
func (AddMoodEntry) Name() string       { return "add_mood_entry" }
func (AddMemory) Name() string          { return "add_memory" }
func (UpdateTask) Name() string         { return "update_task" }
func (AddActivitySession) Name() string { return "add_activity_session" }
func (LoadPatients) Name() string       { return "load_patients" }

func (SetView) isAction()            {}
func (SetUser) isAction()            {}
func (SetRole) isAction()            {}
func (SetAuthenticated) isAction()   {}
func (Logout) isAction()             {}
func (SelectPatient) isAction()      {}
func (MarkAlertRead) isAction()      {}
func (AddMedicationLog) isAction()   {}
func (AddMoodEntry) isAction()       {}
func (AddMemory) isAction()          {}
func (UpdateTask) isAction()         {}
func (AddActivitySession) isAction() {}
func (LoadPatients) isAction()       {}
