// Package caregiverportal computes the view models and handles the intents
// of the caregiver screens: the multi-patient roster, the per-patient
// dashboard, crisis prevention, health history, goals, care team, education
// and the memory book. Like the other portals it is stateless; views derive
// from store snapshots and intents go through dispatch.
package caregiverportal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carecompanion/carecompanion/internal/domain/alert"
	"github.com/carecompanion/carecompanion/internal/domain/careteam"
	"github.com/carecompanion/carecompanion/internal/domain/engagement"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/domain/patient"
	"github.com/carecompanion/carecompanion/internal/domain/task"
	"github.com/carecompanion/carecompanion/internal/domain/wellness"
	"github.com/carecompanion/carecompanion/internal/store"
)

// Service serves the caregiver portal.
type Service struct {
	store *store.Store
	log   zerolog.Logger
	now   func() time.Time
}

// New creates the caregiver portal service.
func New(st *store.Store, log zerolog.Logger) *Service {
	return &Service{store: st, log: log, now: time.Now}
}

// SetClock overrides the service clock. Test hook.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// ── roster ──

// RosterEntry is one patient card on the multi-patient overview.
type RosterEntry struct {
	Patient         patient.Patient
	Risk            alert.RiskProfile
	UnreadAlerts    int
	UnresolvedRisks int
	TasksCompleted  int
	TasksTotal      int
	MedsTaken       int
	MedsTotal       int
	LatestMood      wellness.Mood
	Selected        bool
}

// RosterView is the multi-patient overview.
type RosterView struct {
	Entries        []RosterEntry
	NeedsAttention int
	Monitoring     int
	Stable         int
}

// Roster builds the overview across every patient under care.
func (s *Service) Roster() RosterView {
	snap := s.store.Snapshot()
	view := RosterView{Entries: make([]RosterEntry, 0, len(snap.Patients))}
	for _, d := range snap.Patients {
		entry := RosterEntry{
			Patient:      d.Patient,
			Risk:         alert.Rollup(d.SafetyAlerts, d.Alerts),
			UnreadAlerts: alert.CountUnread(d.Alerts),
			UnresolvedRisks: alert.CountUnresolved(d.SafetyAlerts, alert.CategoryRed) +
				alert.CountUnresolved(d.SafetyAlerts, alert.CategoryYellow),
			TasksCompleted: task.CountByStatus(d.Tasks, task.StatusCompleted),
			TasksTotal:     len(d.Tasks),
			MedsTaken:      d.Stats.MedicationsTaken,
			MedsTotal:      d.Stats.MedicationsTotal,
			Selected:       d.Patient.ID == snap.SelectedPatientID,
		}
		if m := wellness.LatestMood(d.MoodEntries); m != nil {
			entry.LatestMood = m.Mood
		}
		switch entry.Risk {
		case alert.RiskNeedsAttention:
			view.NeedsAttention++
		case alert.RiskMonitor:
			view.Monitoring++
		default:
			view.Stable++
		}
		view.Entries = append(view.Entries, entry)
	}
	return view
}

// SelectPatient focuses the portal on one patient.
func (s *Service) SelectPatient(ctx context.Context, patientID string) error {
	snap := s.store.Snapshot()
	for _, d := range snap.Patients {
		if d.Patient.ID == patientID {
			return s.store.Dispatch(ctx, store.SelectPatient{PatientID: patientID})
		}
	}
	return fmt.Errorf("unknown patient: %s", patientID)
}

// ClearSelection returns to the whole-roster view.
func (s *Service) ClearSelection(ctx context.Context) error {
	return s.store.Dispatch(ctx, store.SelectPatient{PatientID: ""})
}

// ── dashboard ──

// DashboardView is the per-patient caregiver dashboard.
type DashboardView struct {
	Greeting     string
	Patient      patient.Patient
	Stats        patient.DashboardStats
	Alerts       []alert.Alert       // unread, at most 3
	MoreAlerts   int                 // unread beyond the 3 shown
	PendingTasks []task.Task         // at most 3
	Appointments []task.Appointment  // at most 2
	Risk         alert.RiskProfile
}

// Dashboard builds the dashboard for the selected patient. ok is false when
// no patient is selected, which renders as the pick-a-patient placeholder.
func (s *Service) Dashboard(caregiverName string) (DashboardView, bool) {
	snap := s.store.Snapshot()
	d := snap.SelectedPatient()
	if d == nil {
		return DashboardView{}, false
	}
	hour := s.now().Hour()
	greeting := "Good evening"
	switch {
	case hour < 12:
		greeting = "Good morning"
	case hour < 17:
		greeting = "Good afternoon"
	}
	if caregiverName != "" {
		greeting += ", " + caregiverName
	}

	var unread []alert.Alert
	for _, a := range d.Alerts {
		if !a.IsRead {
			unread = append(unread, a)
		}
	}
	view := DashboardView{
		Greeting: greeting,
		Patient:  d.Patient,
		Stats:    d.Stats,
		Risk:     alert.Rollup(d.SafetyAlerts, d.Alerts),
	}
	if len(unread) > 3 {
		view.MoreAlerts = len(unread) - 3
		unread = unread[:3]
	}
	view.Alerts = unread

	pending := task.Pending(d.Tasks)
	if len(pending) > 3 {
		pending = pending[:3]
	}
	view.PendingTasks = pending

	appts := d.Appointments
	if len(appts) > 2 {
		appts = appts[:2]
	}
	view.Appointments = appts
	return view, true
}

// MarkAlertRead acknowledges an alert. Repeating the call is harmless.
func (s *Service) MarkAlertRead(ctx context.Context, alertID string) error {
	return s.store.Dispatch(ctx, store.MarkAlertRead{AlertID: alertID})
}

// ── crisis prevention ──

// RiskBucket is one column of the selected patient's risk profile.
type RiskBucket struct {
	Label  string
	Titles []string // at most 3
}

// CrisisView is the crisis prevention screen: the static playbooks plus,
// when a patient is selected, their live triage.
type CrisisView struct {
	Guides     []CrisisGuide
	Contacts   []EmergencyContact
	HasPatient bool
	Alerts     []alert.Alert // at most 3
	MoreAlerts int
	HighRisk   RiskBucket
	Monitor    RiskBucket
	Stable     RiskBucket
}

// CrisisPrevention builds the crisis screen. The guides and contacts are
// always present; the triage section only when a patient is selected.
func (s *Service) CrisisPrevention() CrisisView {
	view := CrisisView{
		Guides:   crisisGuides,
		Contacts: emergencyContacts,
		HighRisk: RiskBucket{Label: "High Risk"},
		Monitor:  RiskBucket{Label: "Monitor"},
		Stable:   RiskBucket{Label: "Stable"},
	}
	snap := s.store.Snapshot()
	d := snap.SelectedPatient()
	if d == nil {
		return view
	}
	view.HasPatient = true
	alerts := d.Alerts
	if len(alerts) > 3 {
		view.MoreAlerts = len(alerts) - 3
		alerts = alerts[:3]
	}
	view.Alerts = alerts

	for _, sa := range d.SafetyAlerts {
		switch {
		case sa.Category == alert.CategoryRed && !sa.IsResolved:
			view.HighRisk.Titles = appendCapped(view.HighRisk.Titles, sa.Title, 3)
		case sa.Category == alert.CategoryYellow && !sa.IsResolved:
			view.Monitor.Titles = appendCapped(view.Monitor.Titles, sa.Title, 3)
		case sa.Category == alert.CategoryGreen || sa.IsResolved:
			view.Stable.Titles = appendCapped(view.Stable.Titles, sa.Title, 3)
		}
	}
	return view
}

func appendCapped(dst []string, v string, limit int) []string {
	if len(dst) >= limit {
		return dst
	}
	return append(dst, v)
}

// ── health history ──

// HealthView is the behavior and mood history for the selected patient.
type HealthView struct {
	Patient       patient.Patient
	BehaviorLogs  []wellness.BehaviorLog
	SevereCount   int
	ModerateCount int
	MildCount     int
	MoodEntries   []wellness.MoodEntry
	MoodAverage   float64
	MoodTrend     wellness.MoodTrend
	Adherence     int
}

// Health builds the health history screen for the selected patient.
func (s *Service) Health() (HealthView, bool) {
	snap := s.store.Snapshot()
	d := snap.SelectedPatient()
	if d == nil {
		return HealthView{}, false
	}
	bySeverity := wellness.CountBySeverity(d.BehaviorLogs)
	return HealthView{
		Patient:       d.Patient,
		BehaviorLogs:  d.BehaviorLogs,
		SevereCount:   bySeverity[wellness.SeveritySevere],
		ModerateCount: bySeverity[wellness.SeverityModerate],
		MildCount:     bySeverity[wellness.SeverityMild],
		MoodEntries:   d.MoodEntries,
		MoodAverage:   wellness.AverageIntensity(d.MoodEntries),
		MoodTrend:     wellness.TrendFor(d.MoodEntries, s.now(), 7*24*time.Hour),
		Adherence:     medication.AdherenceRate(d.MedicationLogs),
	}, true
}

// ── goals and care team ──

// GoalRow pairs a goal with its derived completion percentage.
type GoalRow struct {
	Goal    careteam.Goal
	Percent int
}

// Goals lists the care goals with milestone progress.
func (s *Service) Goals() []GoalRow {
	snap := s.store.Snapshot()
	out := make([]GoalRow, 0, len(snap.Goals))
	for _, g := range snap.Goals {
		out = append(out, GoalRow{Goal: g, Percent: g.MilestoneProgress()})
	}
	return out
}

// CareTeam lists the care team, primary contact first.
func (s *Service) CareTeam() []careteam.CareTeamMember {
	snap := s.store.Snapshot()
	out := make([]careteam.CareTeamMember, 0, len(snap.CareTeam))
	for _, m := range snap.CareTeam {
		if m.IsPrimary {
			out = append(out, m)
		}
	}
	for _, m := range snap.CareTeam {
		if !m.IsPrimary {
			out = append(out, m)
		}
	}
	return out
}

// ── memory book and records ──

// AddMemory adds a memory to the selected patient's memory book.
func (s *Service) AddMemory(ctx context.Context, title, photoURL, date string) error {
	snap := s.store.Snapshot()
	d := snap.SelectedPatient()
	if d == nil {
		return fmt.Errorf("no patient selected")
	}
	if title == "" {
		return fmt.Errorf("memory title is required")
	}
	mem := engagement.Memory{
		ID:        uuid.NewString(),
		PatientID: d.Patient.ID,
		Title:     title,
		PhotoURL:  photoURL,
		Date:      date,
		CreatedAt: s.now(),
	}
	if err := s.store.Dispatch(ctx, store.AddMemory{Memory: mem}); err != nil {
		return err
	}
	s.log.Info().Str("patient", d.Patient.ID).Str("title", title).Msg("memory added")
	return nil
}

// Memories returns the selected patient's memory book.
func (s *Service) Memories() ([]engagement.Memory, bool) {
	snap := s.store.Snapshot()
	d := snap.SelectedPatient()
	if d == nil {
		return nil, false
	}
	return d.Memories, true
}

// Documents returns the selected patient's documents.
func (s *Service) Documents() ([]engagement.Document, bool) {
	snap := s.store.Snapshot()
	d := snap.SelectedPatient()
	if d == nil {
		return nil, false
	}
	return d.Documents, true
}

// Reminders returns the selected patient's reminders, active and paused.
func (s *Service) Reminders() ([]task.Reminder, bool) {
	snap := s.store.Snapshot()
	d := snap.SelectedPatient()
	if d == nil {
		return nil, false
	}
	return d.Reminders, true
}
