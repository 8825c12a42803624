package patient

import (
	"github.com/carecompanion/carecompanion/internal/domain/alert"
	"github.com/carecompanion/carecompanion/internal/domain/engagement"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/domain/task"
	"github.com/carecompanion/carecompanion/internal/domain/wellness"
)

// Data is the aggregate root: one patient plus every per-patient
// sub-collection. Each Data exclusively owns its collections; nothing is
// shared between patients.
type Data struct {
	Patient        Patient                      `json:"patient"`
	Medications    []medication.Medication      `json:"medications"`
	MedicationLogs []medication.Log             `json:"medication_logs"`
	MoodEntries    []wellness.MoodEntry         `json:"mood_entries"`
	BehaviorLogs   []wellness.BehaviorLog       `json:"behavior_logs"`
	Tasks          []task.Task                  `json:"tasks"`
	Appointments   []task.Appointment           `json:"appointments"`
	Reminders      []task.Reminder              `json:"reminders"`
	Alerts         []alert.Alert                `json:"alerts"`
	SafetyAlerts   []alert.SafetyAlert          `json:"safety_alerts"`
	Documents      []engagement.Document        `json:"documents"`
	Memories       []engagement.Memory          `json:"memories"`
	Activities     []engagement.Activity        `json:"activities"`
	Sessions       []engagement.ActivitySession `json:"sessions"`
	Stats          DashboardStats               `json:"dashboard_stats"`
}

// ID returns the owning patient's id.
func (d Data) ID() string { return d.Patient.ID }

// Clone returns a copy whose collections are fresh slices, so the copy can
// be appended to or edited without disturbing the original. Element structs
// are value types; slices of them copy cleanly.
func (d Data) Clone() Data {
	out := d
	out.Patient.FamiliarFaces = cloneSlice(d.Patient.FamiliarFaces)
	out.Medications = cloneMedications(d.Medications)
	out.MedicationLogs = cloneSlice(d.MedicationLogs)
	out.MoodEntries = cloneMoodEntries(d.MoodEntries)
	out.BehaviorLogs = cloneBehaviorLogs(d.BehaviorLogs)
	out.Tasks = cloneSlice(d.Tasks)
	out.Appointments = cloneSlice(d.Appointments)
	out.Reminders = cloneReminders(d.Reminders)
	out.Alerts = cloneSlice(d.Alerts)
	out.SafetyAlerts = cloneSlice(d.SafetyAlerts)
	out.Documents = cloneSlice(d.Documents)
	out.Memories = cloneSlice(d.Memories)
	out.Activities = cloneSlice(d.Activities)
	out.Sessions = cloneSlice(d.Sessions)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Medications, mood entries, behavior logs and reminders carry nested
// slices of their own, so a flat copy is not enough.

func cloneMedications(in []medication.Medication) []medication.Medication {
	out := cloneSlice(in)
	for i := range out {
		out[i].Schedule = cloneSlice(out[i].Schedule)
		out[i].SideEffects = cloneSlice(out[i].SideEffects)
	}
	return out
}

func cloneMoodEntries(in []wellness.MoodEntry) []wellness.MoodEntry {
	out := cloneSlice(in)
	for i := range out {
		out[i].Triggers = cloneSlice(out[i].Triggers)
	}
	return out
}

func cloneBehaviorLogs(in []wellness.BehaviorLog) []wellness.BehaviorLog {
	out := cloneSlice(in)
	for i := range out {
		out[i].Interventions = cloneSlice(out[i].Interventions)
	}
	return out
}

func cloneReminders(in []task.Reminder) []task.Reminder {
	out := cloneSlice(in)
	for i := range out {
		out[i].DaysOfWeek = cloneSlice(out[i].DaysOfWeek)
	}
	return out
}
