// Package patientportal computes the view models and handles the intents of
// the patient-facing screens: home, medications, mood, routine, activities,
// memories, reminders and documents. It holds no state of its own; every
// view is derived from a fresh store snapshot.
package patientportal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carecompanion/carecompanion/internal/domain/engagement"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/domain/patient"
	"github.com/carecompanion/carecompanion/internal/domain/task"
	"github.com/carecompanion/carecompanion/internal/domain/wellness"
	"github.com/carecompanion/carecompanion/internal/platform/schedule"
	"github.com/carecompanion/carecompanion/internal/store"
)

// Service serves the patient portal.
type Service struct {
	store *store.Store
	log   zerolog.Logger
	now   func() time.Time

	sundownStart int // inclusive hour
	sundownEnd   int // inclusive hour
}

// New creates the patient portal service. The sundowning window is given as
// inclusive hours of day.
func New(st *store.Store, log zerolog.Logger, sundownStart, sundownEnd int) *Service {
	return &Service{
		store:        st,
		log:          log,
		now:          time.Now,
		sundownStart: sundownStart,
		sundownEnd:   sundownEnd,
	}
}

// SetClock overrides the service clock. Test hook.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// DayPart buckets the hour for greeting and theming.
type DayPart string

const (
	DayMorning   DayPart = "morning"
	DayAfternoon DayPart = "afternoon"
	DayEvening   DayPart = "evening"
)

func dayPartFor(hour int) DayPart {
	switch {
	case hour < 12:
		return DayMorning
	case hour < 19:
		return DayAfternoon
	default:
		return DayEvening
	}
}

// Weather is the mocked weather strip with its emotional nudge.
type Weather struct {
	Temp      int
	Condition string
	Message   string
}

func weatherFor(hour int) Weather {
	switch {
	case hour < 12:
		return Weather{72, "sunny", "Beautiful sunny day! Perfect for a walk."}
	case hour < 17:
		return Weather{75, "partly-cloudy", "Pleasant afternoon. Great day to be outside."}
	default:
		return Weather{68, "clear", "Lovely evening. Time to wind down."}
	}
}

// FamilyStory is a short prompt card on the home screen.
type FamilyStory struct {
	Title, Author, Preview string
}

var familyStories = []FamilyStory{
	{"Our Wedding Day", "Mary", "Remember when Dad surprised you with..."},
	{"The Beach Vacation", "David", "That time we all went to the beach..."},
	{"Sophie's First Steps", "Mary", "You were so excited when Sophie..."},
}

// HomeView is everything the home screen shows.
type HomeView struct {
	Greeting            string
	Clock               string
	DateLine            string
	DayPart             DayPart
	Sundowning          bool
	AffirmationHeadline string
	AffirmationRest     string
	Weather             Weather
	UpcomingTasks       []task.Task
	MedsTakenToday      int
	FamiliarFaces       []patient.FamiliarFace
	EmergencyContact    patient.EmergencyContact
	Stories             []FamilyStory
}

// Home builds the home screen view. ok is false when no patient is loaded,
// which renders as the empty placeholder.
func (s *Service) Home() (HomeView, bool) {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return HomeView{}, false
	}
	now := s.now()
	hour := now.Hour()
	part := dayPartFor(hour)

	headline, rest := d.Patient.SplitAffirmation()
	upcoming := task.Pending(d.Tasks)
	if len(upcoming) > 3 {
		upcoming = upcoming[:3]
	}
	today := medication.LogsForDay(d.MedicationLogs, medication.DayKey(now))

	return HomeView{
		Greeting:            greetingFor(part) + ", " + d.Patient.DisplayName(),
		Clock:               now.Format("3:04 PM"),
		DateLine:            now.Format("Monday, January 2"),
		DayPart:             part,
		Sundowning:          hour >= s.sundownStart && hour <= s.sundownEnd,
		AffirmationHeadline: headline,
		AffirmationRest:     rest,
		Weather:             weatherFor(hour),
		UpcomingTasks:       upcoming,
		MedsTakenToday:      medication.CountByStatus(today, medication.StatusTaken),
		FamiliarFaces:       d.Patient.FamiliarFaces,
		EmergencyContact:    d.Patient.EmergencyContact,
		Stories:             familyStories,
	}, true
}

func greetingFor(p DayPart) string {
	switch p {
	case DayMorning:
		return "Good morning"
	case DayAfternoon:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// DoseRow is one line of today's medication schedule.
type DoseRow struct {
	MedicationID string
	Name         string
	Dosage       string
	Instructions string
	Time         string
	TimeOfDay    medication.TimeOfDay
	Status       medication.LogStatus
}

// MedicationsView is the medications screen.
type MedicationsView struct {
	Doses          []DoseRow
	TakenCount     int
	RemainingCount int
}

// Medications builds today's dose schedule with per-dose status.
func (s *Service) Medications() (MedicationsView, bool) {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return MedicationsView{}, false
	}
	today := medication.LogsForDay(d.MedicationLogs, medication.DayKey(s.now()))
	doses := medication.ExpandDoses(d.Medications)

	view := MedicationsView{Doses: make([]DoseRow, 0, len(doses))}
	for _, dose := range doses {
		view.Doses = append(view.Doses, DoseRow{
			MedicationID: dose.Medication.ID,
			Name:         dose.Medication.Name,
			Dosage:       dose.Medication.Dosage,
			Instructions: dose.Medication.Instructions,
			Time:         dose.Time,
			TimeOfDay:    dose.TimeOfDay,
			Status:       medication.StatusFor(today, dose.Medication.ID, dose.Time),
		})
	}
	view.TakenCount = medication.CountByStatus(today, medication.StatusTaken)
	view.RemainingCount = len(doses) - view.TakenCount
	if view.RemainingCount < 0 {
		view.RemainingCount = 0
	}
	return view, true
}

// MarkDoseTaken records a taken dose. The log is a strict append; repeating
// the call for the same dose records a second row.
func (s *Service) MarkDoseTaken(ctx context.Context, medicationID, scheduledTime string) error {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return fmt.Errorf("no patient loaded")
	}
	var med *medication.Medication
	for i := range d.Medications {
		if d.Medications[i].ID == medicationID {
			med = &d.Medications[i]
			break
		}
	}
	if med == nil || !med.IsActive {
		return fmt.Errorf("unknown or inactive medication: %s", medicationID)
	}
	now := s.now()
	log := medication.Log{
		ID:             uuid.NewString(),
		MedicationID:   med.ID,
		PatientID:      d.Patient.ID,
		MedicationName: med.Name,
		ScheduledTime:  scheduledTime,
		TakenTime:      &now,
		Status:         medication.StatusTaken,
		RecordedBy:     d.Patient.ID,
		Date:           medication.DayKey(now),
	}
	if err := s.store.Dispatch(ctx, store.AddMedicationLog{Log: log}); err != nil {
		return err
	}
	s.log.Info().Str("medication", med.Name).Str("time", scheduledTime).Msg("dose marked taken")
	return nil
}

// MoodView is the mood screen.
type MoodView struct {
	Choices []wellness.Mood
	Recent  []wellness.MoodEntry
}

// Mood lists the recordable moods and the most recent entries, newest last.
func (s *Service) Mood() (MoodView, bool) {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return MoodView{}, false
	}
	recent := d.MoodEntries
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}
	return MoodView{Choices: wellness.Moods(), Recent: recent}, true
}

// RecordMood appends a mood entry for the active patient. Intensity is
// clamped to 1..10.
func (s *Service) RecordMood(ctx context.Context, mood wellness.Mood, intensity int, note string, triggers []string) error {
	if !mood.Valid() {
		return fmt.Errorf("invalid mood: %s", mood)
	}
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return fmt.Errorf("no patient loaded")
	}
	if intensity < 1 {
		intensity = 1
	}
	if intensity > 10 {
		intensity = 10
	}
	now := s.now()
	entry := wellness.MoodEntry{
		ID:         uuid.NewString(),
		PatientID:  d.Patient.ID,
		Mood:       mood,
		Intensity:  intensity,
		Note:       note,
		Triggers:   triggers,
		TimeOfDay:  string(dayPartFor(now.Hour())),
		Timestamp:  now,
		RecordedBy: d.Patient.ID,
	}
	return s.store.Dispatch(ctx, store.AddMoodEntry{Entry: entry})
}

// RoutineView is the daily routine screen.
type RoutineView struct {
	Tasks           []task.Task
	CompletedCount  int
	Total           int
	ProgressPercent int
	AllDone         bool
}

// Routine builds the routine checklist with progress.
func (s *Service) Routine() (RoutineView, bool) {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return RoutineView{}, false
	}
	done := task.CountByStatus(d.Tasks, task.StatusCompleted)
	view := RoutineView{
		Tasks:          d.Tasks,
		CompletedCount: done,
		Total:          len(d.Tasks),
	}
	if view.Total > 0 {
		view.ProgressPercent = done * 100 / view.Total
		view.AllDone = done == view.Total
	}
	return view, true
}

// ToggleTask flips a task between pending and completed.
func (s *Service) ToggleTask(ctx context.Context, taskID string) error {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return fmt.Errorf("no patient loaded")
	}
	for _, t := range d.Tasks {
		if t.ID == taskID {
			return s.store.Dispatch(ctx, store.UpdateTask{Task: t.Toggled(s.now())})
		}
	}
	return fmt.Errorf("unknown task: %s", taskID)
}

// ActivitiesView is the activities screen.
type ActivitiesView struct {
	Featured engagement.Activity
	Catalog  []engagement.Activity
}

// Activities lists the catalog with breathing featured first, as the screen
// recommends it.
func (s *Service) Activities() (ActivitiesView, bool) {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return ActivitiesView{}, false
	}
	view := ActivitiesView{Catalog: d.Activities}
	for _, a := range d.Activities {
		if a.Type == engagement.ActivityBreathing {
			view.Featured = a
			break
		}
	}
	return view, true
}

// StartActivity records an activity session and returns it. Breathing
// sessions additionally get a phase cycler from StartBreathing.
func (s *Service) StartActivity(ctx context.Context, activityID string) (engagement.ActivitySession, error) {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return engagement.ActivitySession{}, fmt.Errorf("no patient loaded")
	}
	var act *engagement.Activity
	for i := range d.Activities {
		if d.Activities[i].ID == activityID {
			act = &d.Activities[i]
			break
		}
	}
	if act == nil {
		return engagement.ActivitySession{}, fmt.Errorf("unknown activity: %s", activityID)
	}
	session := engagement.ActivitySession{
		ID:            uuid.NewString(),
		ActivityID:    act.ID,
		PatientID:     d.Patient.ID,
		ActivityTitle: act.Title,
		StartedAt:     s.now(),
	}
	if err := s.store.Dispatch(ctx, store.AddActivitySession{Session: session}); err != nil {
		return engagement.ActivitySession{}, err
	}
	return session, nil
}

// StartBreathing begins a guided breathing cycle scoped to ctx. The caller
// must Stop the cycler when the exercise ends or the screen goes away.
func (s *Service) StartBreathing(ctx context.Context) *schedule.Cycler {
	return schedule.StartCycle(ctx)
}

// Memories returns the memory book, favorites first.
func (s *Service) Memories() ([]engagement.Memory, bool) {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return nil, false
	}
	out := make([]engagement.Memory, 0, len(d.Memories))
	for _, m := range d.Memories {
		if m.IsFavorite {
			out = append(out, m)
		}
	}
	for _, m := range d.Memories {
		if !m.IsFavorite {
			out = append(out, m)
		}
	}
	return out, true
}

// Reminders returns the active reminders.
func (s *Service) Reminders() ([]task.Reminder, bool) {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return nil, false
	}
	var out []task.Reminder
	for _, r := range d.Reminders {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, true
}

// Documents returns the patient's documents.
func (s *Service) Documents() ([]engagement.Document, bool) {
	snap := s.store.Snapshot()
	d := snap.ActivePatient()
	if d == nil {
		return nil, false
	}
	return d.Documents, true
}
