// Package seed produces the synthetic patient aggregates and caregiver
// roster that populate the store on first authenticated render. Output is
// deterministic for a given Config: same seed, same data.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/carecompanion/carecompanion/internal/domain/alert"
	"github.com/carecompanion/carecompanion/internal/domain/careteam"
	"github.com/carecompanion/carecompanion/internal/domain/engagement"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/domain/patient"
	"github.com/carecompanion/carecompanion/internal/domain/task"
	"github.com/carecompanion/carecompanion/internal/domain/wellness"
)

// Config controls the volume and shape of generated data.
type Config struct {
	PatientCount      int   `json:"patientCount"`
	MoodsPerPatient   int   `json:"moodsPerPatient"`
	BehaviorsPerPatient int `json:"behaviorsPerPatient"`
	MemoriesPerPatient int  `json:"memoriesPerPatient"`
	Seed              int64 `json:"seed"`
}

// DefaultConfig returns the demo defaults: a small caregiver caseload.
func DefaultConfig() Config {
	return Config{
		PatientCount:        3,
		MoodsPerPatient:     8,
		BehaviorsPerPatient: 3,
		MemoriesPerPatient:  4,
	}
}

// Result summarizes one generation run.
type Result struct {
	Patients  []patient.Data
	CareTeam  []careteam.CareTeamMember
	Goals     []careteam.Goal
	Generated int
}

// Generator builds seeded aggregates.
type Generator struct {
	cfg Config
	rng *rand.Rand
	now time.Time
}

// New creates a generator anchored at now.
func New(cfg Config, now time.Time) *Generator {
	if cfg.PatientCount <= 0 {
		cfg.PatientCount = 1
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed)), now: now}
}

// ---------------------------------------------------------------------------
// Pools
// ---------------------------------------------------------------------------

type person struct {
	first, last, preferred string
	stage                  patient.Stage
	address                string
}

// The first patient is always Eleanor Thompson, the household the demo
// login belongs to. The rest fill out a multi-patient caseload.
var patientPool = []person{
	{"Eleanor", "Thompson", "Ellie", patient.StageModerate, "42 Maple Grove Lane, Portland, OR"},
	{"Harold", "Jenkins", "Harry", patient.StageEarly, "18 Birchwood Court, Portland, OR"},
	{"Margaret", "Okafor", "Peggy", patient.StageSevere, "230 Cedar Hill Road, Beaverton, OR"},
	{"Walter", "Lindqvist", "", patient.StageModerate, "77 Juniper Way, Lake Oswego, OR"},
	{"Rosa", "Delgado", "", patient.StageEarly, "9 Alder Street, Portland, OR"},
}

var affirmations = []string{
	"You are safe. You are loved. You are at home.",
	"Today is a good day. Your family is close by.",
	"You are cared for. Everything is taken care of.",
}

type drug struct {
	name, dosage, form, instructions, prescriber string
	times                                        []string
	sideEffects                                  []string
}

var drugPool = []drug{
	{"Donepezil", "10mg", "tablet", "Take with a full glass of water, in the evening", "Dr. Sarah Johnson",
		[]string{"20:00"}, []string{"nausea", "insomnia"}},
	{"Memantine", "5mg", "tablet", "Take with or without food", "Dr. Sarah Johnson",
		[]string{"08:00", "20:00"}, []string{"dizziness", "headache"}},
	{"Rivastigmine", "4.6mg/24h", "patch", "Apply to clean, dry skin; rotate sites", "Dr. Anil Mehta",
		[]string{"09:00"}, []string{"skin irritation"}},
	{"Sertraline", "50mg", "tablet", "Take in the morning with breakfast", "Dr. Anil Mehta",
		[]string{"08:00"}, []string{"dry mouth"}},
	{"Vitamin D3", "1000 IU", "capsule", "Take with the largest meal of the day", "Dr. Sarah Johnson",
		[]string{"12:00"}, nil},
}

type routineItem struct {
	title, icon, clock, timeOfDay string
}

var routinePool = []routineItem{
	{"Morning walk in the garden", "walk", "09:30", "morning"},
	{"Breakfast with medication", "meal", "08:00", "morning"},
	{"Listen to favorite music", "music", "11:00", "morning"},
	{"Lunch", "meal", "12:30", "afternoon"},
	{"Afternoon rest", "rest", "14:00", "afternoon"},
	{"Look through the memory book", "book", "15:30", "afternoon"},
	{"Dinner with family", "meal", "18:00", "evening"},
	{"Evening wind-down routine", "moon", "20:30", "evening"},
}

var moodNotes = []string{
	"Seemed settled after the walk",
	"A little restless before lunch",
	"Enjoyed looking at old photos",
	"Asked about visiting the old house",
	"Hummed along to the radio",
	"",
}

var moodTriggers = [][]string{
	{"noise"}, {"unfamiliar visitor"}, {"tiredness"}, nil, nil, nil,
}

type behaviorItem struct {
	behavior    string
	severity    wellness.Severity
	description string
	interventions []string
}

var behaviorPool = []behaviorItem{
	{"Sundowning agitation", wellness.SeverityModerate,
		"Increased restlessness and pacing in late afternoon",
		[]string{"Dimmed lights", "Played calm music", "Offered a warm drink"}},
	{"Repetitive questioning", wellness.SeverityMild,
		"Asked about dinner plans repeatedly over an hour",
		[]string{"Answered calmly each time", "Redirected to folding laundry"}},
	{"Wandering toward the door", wellness.SeveritySevere,
		"Tried to leave the house at dusk saying they had to get to work",
		[]string{"Walked together to the garden instead", "Called daughter to talk"}},
	{"Refusing medication", wellness.SeverityModerate,
		"Declined the evening tablet twice",
		[]string{"Offered with applesauce", "Retried after twenty minutes"}},
}

type alertItem struct {
	title, message, severity string
}

var alertPool = []alertItem{
	{"Missed evening dose", "Donepezil was not logged yesterday evening", "high"},
	{"Low activity day", "Fewer than two routine tasks completed yesterday", "medium"},
	{"Mood dip recorded", "Two anxious entries in a row this week", "medium"},
	{"New document uploaded", "Care plan update from Dr. Johnson", "low"},
}

type safetyItem struct {
	title, detail string
	category      alert.Category
}

var safetyPool = []safetyItem{
	{"Wandering risk at dusk", "Attempted to leave unaccompanied twice this month", alert.CategoryRed},
	{"Unsteady on stairs", "Held the rail with both hands; consider a second rail", alert.CategoryYellow},
	{"Kitchen safety review done", "Stove guard installed and tested", alert.CategoryGreen},
	{"Hydration below target", "Under five glasses on three of the last seven days", alert.CategoryYellow},
}

var memoryPool = []struct{ title, date string }{
	{"Our Wedding Day", "June 1964"},
	{"The Beach Vacation", "Summer 1982"},
	{"Sophie's First Steps", "March 2016"},
	{"Sunday Garden Afternoons", "Spring 1998"},
	{"Fifty Years Together", "June 2014"},
}

var documentPool = []struct{ title, category, fileType, fileSize string }{
	{"Care Plan - Current", "medical", "pdf", "1.2 MB"},
	{"Power of Attorney", "legal", "pdf", "480 KB"},
	{"Medication List", "medical", "pdf", "210 KB"},
	{"Insurance Card", "insurance", "jpg", "2.1 MB"},
}

var activityCatalog = []engagement.Activity{
	{ID: "act-breathing", Title: "Calm Breathing", Description: "Follow the circle and breathe", Type: engagement.ActivityBreathing, Duration: "3 min"},
	{ID: "act-matching", Title: "Photo Matching", Description: "Match the familiar faces", Type: engagement.ActivityBrainGame, Duration: "10 min"},
	{ID: "act-music", Title: "Music Hour", Description: "Songs from the good years", Type: engagement.ActivityMusic, Duration: "30 min"},
	{ID: "act-journey", Title: "Photo Journey", Description: "A walk through the family album", Type: engagement.ActivityPhotoJourney, Duration: "15 min"},
	{ID: "act-stretch", Title: "Gentle Stretching", Description: "Seated movement routine", Type: engagement.ActivityMovement, Duration: "10 min"},
	{ID: "act-puzzle", Title: "Picture Puzzle", Description: "Large-piece garden scene", Type: engagement.ActivityPuzzle, Duration: "20 min"},
}

// ---------------------------------------------------------------------------
// Generation
// ---------------------------------------------------------------------------

// Generate builds the full seed set.
func (g *Generator) Generate() Result {
	n := g.cfg.PatientCount
	if n > len(patientPool) {
		n = len(patientPool)
	}
	res := Result{}
	for i := 0; i < n; i++ {
		res.Patients = append(res.Patients, g.patientData(i))
	}
	res.CareTeam = g.careTeam()
	res.Goals = g.goals()
	res.Generated = len(res.Patients)
	return res
}

func (g *Generator) patientData(i int) patient.Data {
	src := patientPool[i]
	pid := fmt.Sprintf("p%d", i+1)

	p := patient.Patient{
		ID:            pid,
		FirstName:     src.first,
		LastName:      src.last,
		PreferredName: src.preferred,
		Stage:         src.stage,
		Address:       src.address,
		Affirmation:   affirmations[i%len(affirmations)],
		FamiliarFaces: []patient.FamiliarFace{
			{ID: pid + "-f1", Name: "Mary", Relationship: "Daughter", Phone: "555-0142"},
			{ID: pid + "-f2", Name: "David", Relationship: "Son", Phone: "555-0178"},
			{ID: pid + "-f3", Name: "Sophie", Relationship: "Granddaughter"},
		},
		EmergencyContact: patient.EmergencyContact{
			Name: "Mary Thompson", Relationship: "Daughter", Phone: "555-0142",
		},
	}

	meds := g.medications(pid)
	tasks := g.tasks(pid)
	moods := g.moodEntries(pid)
	logs := g.medicationLogs(pid, meds)

	d := patient.Data{
		Patient:        p,
		Medications:    meds,
		MedicationLogs: logs,
		MoodEntries:    moods,
		BehaviorLogs:   g.behaviorLogs(pid),
		Tasks:          tasks,
		Appointments:   g.appointments(pid),
		Reminders:      g.reminders(pid),
		Alerts:         g.alerts(pid),
		SafetyAlerts:   g.safetyAlerts(pid, src.stage),
		Documents:      g.documents(pid),
		Memories:       g.memories(pid),
		Activities:     activityCatalog,
	}
	d.Stats = g.stats(d)
	return d
}

func (g *Generator) medications(pid string) []medication.Medication {
	count := 2 + g.rng.Intn(2) // 2..3
	out := make([]medication.Medication, 0, count)
	for j := 0; j < count; j++ {
		src := drugPool[(j+g.rng.Intn(2))%len(drugPool)]
		sched := make([]medication.ScheduleEntry, 0, len(src.times))
		for _, t := range src.times {
			sched = append(sched, medication.ScheduleEntry{Time: t})
		}
		out = append(out, medication.Medication{
			ID:           fmt.Sprintf("%s-med%d", pid, j+1),
			PatientID:    pid,
			Name:         src.name,
			Dosage:       src.dosage,
			Form:         src.form,
			Instructions: src.instructions,
			PrescribedBy: src.prescriber,
			Schedule:     sched,
			SideEffects:  src.sideEffects,
			IsActive:     true,
		})
	}
	return out
}

// medicationLogs backfills yesterday's doses as mostly taken, leaving today
// pending so the portal has something to do.
func (g *Generator) medicationLogs(pid string, meds []medication.Medication) []medication.Log {
	yesterday := g.now.AddDate(0, 0, -1)
	day := medication.DayKey(yesterday)
	var out []medication.Log
	seq := 0
	for _, m := range meds {
		for _, s := range m.Schedule {
			seq++
			status := medication.StatusTaken
			if g.rng.Intn(5) == 0 {
				status = medication.StatusMissed
			}
			l := medication.Log{
				ID:             fmt.Sprintf("%s-log%d", pid, seq),
				MedicationID:   m.ID,
				PatientID:      pid,
				MedicationName: m.Name,
				ScheduledTime:  s.Time,
				Status:         status,
				RecordedBy:     pid,
				Date:           day,
			}
			if status == medication.StatusTaken {
				t := yesterday
				l.TakenTime = &t
			}
			out = append(out, l)
		}
	}
	return out
}

func (g *Generator) tasks(pid string) []task.Task {
	out := make([]task.Task, 0, len(routinePool))
	for j, r := range routinePool {
		st := task.StatusPending
		var completedAt *time.Time
		if j < 2 && g.rng.Intn(2) == 0 {
			st = task.StatusCompleted
			t := g.now.Add(-time.Duration(1+g.rng.Intn(4)) * time.Hour)
			completedAt = &t
		}
		out = append(out, task.Task{
			ID:            fmt.Sprintf("%s-task%d", pid, j+1),
			PatientID:     pid,
			Title:         r.title,
			Icon:          r.icon,
			ScheduledTime: r.clock,
			TimeOfDay:     r.timeOfDay,
			Status:        st,
			CompletedAt:   completedAt,
		})
	}
	return out
}

func (g *Generator) moodEntries(pid string) []wellness.MoodEntry {
	moods := wellness.Moods()
	out := make([]wellness.MoodEntry, 0, g.cfg.MoodsPerPatient)
	for j := 0; j < g.cfg.MoodsPerPatient; j++ {
		k := g.rng.Intn(len(moodNotes))
		out = append(out, wellness.MoodEntry{
			ID:         fmt.Sprintf("%s-mood%d", pid, j+1),
			PatientID:  pid,
			Mood:       moods[g.rng.Intn(len(moods))],
			Intensity:  3 + g.rng.Intn(7),
			Note:       moodNotes[k],
			Triggers:   moodTriggers[k%len(moodTriggers)],
			TimeOfDay:  []string{"morning", "afternoon", "evening"}[g.rng.Intn(3)],
			Timestamp:  g.now.AddDate(0, 0, -j).Add(-time.Duration(g.rng.Intn(8)) * time.Hour),
			RecordedBy: pid,
		})
	}
	return out
}

func (g *Generator) behaviorLogs(pid string) []wellness.BehaviorLog {
	count := g.cfg.BehaviorsPerPatient
	if count > len(behaviorPool) {
		count = len(behaviorPool)
	}
	out := make([]wellness.BehaviorLog, 0, count)
	for j := 0; j < count; j++ {
		src := behaviorPool[(j+g.rng.Intn(2))%len(behaviorPool)]
		out = append(out, wellness.BehaviorLog{
			ID:            fmt.Sprintf("%s-beh%d", pid, j+1),
			PatientID:     pid,
			Behavior:      src.behavior,
			Severity:      src.severity,
			Description:   src.description,
			Interventions: src.interventions,
			Date:          g.now.AddDate(0, 0, -(j*2 + 1)),
		})
	}
	return out
}

func (g *Generator) appointments(pid string) []task.Appointment {
	return []task.Appointment{
		{
			ID: pid + "-apt1", PatientID: pid,
			Title: "Memory clinic follow-up", Provider: "Dr. Sarah Johnson",
			Location: "Northwest Memory Center",
			Date:     medication.DayKey(g.now.AddDate(0, 0, 3)), Time: "10:30",
		},
		{
			ID: pid + "-apt2", PatientID: pid,
			Title: "Physical therapy", Provider: "Ruth Calloway, PT",
			Location: "Home visit",
			Date:     medication.DayKey(g.now.AddDate(0, 0, 7)), Time: "14:00",
		},
	}
}

func (g *Generator) reminders(pid string) []task.Reminder {
	weekdays := []string{"mon", "tue", "wed", "thu", "fri"}
	return []task.Reminder{
		{ID: pid + "-rem1", PatientID: pid, Type: "medication", Title: "Morning medication",
			Message: "Time for your morning tablets", Time: "08:00",
			DaysOfWeek: []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}, IsActive: true},
		{ID: pid + "-rem2", PatientID: pid, Type: "hydration", Title: "Drink some water",
			Message: "A glass of water keeps you feeling well", Time: "11:00",
			DaysOfWeek: weekdays, IsActive: true},
		{ID: pid + "-rem3", PatientID: pid, Type: "appointment", Title: "Clinic visit soon",
			Message: "Memory clinic follow-up this week", Time: "09:00",
			DaysOfWeek: []string{"mon"}, IsActive: false},
	}
}

func (g *Generator) alerts(pid string) []alert.Alert {
	count := 2 + g.rng.Intn(2)
	out := make([]alert.Alert, 0, count)
	for j := 0; j < count; j++ {
		src := alertPool[(j+g.rng.Intn(2))%len(alertPool)]
		out = append(out, alert.Alert{
			ID:        fmt.Sprintf("%s-alert%d", pid, j+1),
			PatientID: pid,
			Title:     src.title,
			Message:   src.message,
			Severity:  src.severity,
			CreatedAt: g.now.Add(-time.Duration(j+1) * 6 * time.Hour),
		})
	}
	return out
}

// safetyAlerts skews the band toward the dementia stage: severe-stage
// patients get the red wandering entry, early-stage ones stay green/yellow.
func (g *Generator) safetyAlerts(pid string, stage patient.Stage) []alert.SafetyAlert {
	var picks []safetyItem
	switch stage {
	case patient.StageSevere:
		picks = []safetyItem{safetyPool[0], safetyPool[1], safetyPool[2]}
	case patient.StageModerate:
		picks = []safetyItem{safetyPool[1], safetyPool[3], safetyPool[2]}
	default:
		picks = []safetyItem{safetyPool[2], safetyPool[3]}
	}
	out := make([]alert.SafetyAlert, 0, len(picks))
	for j, src := range picks {
		out = append(out, alert.SafetyAlert{
			ID:         fmt.Sprintf("%s-safety%d", pid, j+1),
			PatientID:  pid,
			Title:      src.title,
			Detail:     src.detail,
			Category:   src.category,
			IsResolved: src.category == alert.CategoryGreen,
		})
	}
	return out
}

func (g *Generator) documents(pid string) []engagement.Document {
	out := make([]engagement.Document, 0, len(documentPool))
	for j, src := range documentPool {
		out = append(out, engagement.Document{
			ID:        fmt.Sprintf("%s-doc%d", pid, j+1),
			PatientID: pid,
			Title:     src.title,
			Category:  src.category,
			FileType:  src.fileType,
			FileSize:  src.fileSize,
			CreatedAt: g.now.AddDate(0, 0, -(j*10 + 5)),
		})
	}
	return out
}

func (g *Generator) memories(pid string) []engagement.Memory {
	count := g.cfg.MemoriesPerPatient
	if count > len(memoryPool) {
		count = len(memoryPool)
	}
	out := make([]engagement.Memory, 0, count)
	for j := 0; j < count; j++ {
		src := memoryPool[j]
		out = append(out, engagement.Memory{
			ID:         fmt.Sprintf("%s-mem%d", pid, j+1),
			PatientID:  pid,
			Title:      src.title,
			Date:       src.date,
			IsFavorite: j == 0,
			CreatedAt:  g.now.AddDate(0, 0, -(j*30 + 10)),
		})
	}
	return out
}

func (g *Generator) stats(d patient.Data) patient.DashboardStats {
	stats := patient.DashboardStats{
		TasksCompleted:           task.CountByStatus(d.Tasks, task.StatusCompleted),
		TasksTotal:               len(d.Tasks),
		MedicationsTaken:         medication.CountByStatus(d.MedicationLogs, medication.StatusTaken),
		MedicationsTotal:         len(d.MedicationLogs),
		MedicationsAdherenceRate: medication.AdherenceRate(d.MedicationLogs),
		MoodTrend:                wellness.TrendFor(d.MoodEntries, g.now, 7*24*time.Hour),
		SleepHours:               6.5 + float64(g.rng.Intn(4))*0.5,
		SleepQuality:             []string{"Good", "Fair", "Restless"}[g.rng.Intn(3)],
	}
	if latest := wellness.LatestMood(d.MoodEntries); latest != nil {
		stats.MoodToday = latest.Mood
	}
	return stats
}

func (g *Generator) careTeam() []careteam.CareTeamMember {
	return []careteam.CareTeamMember{
		{ID: "ct1", Name: "Dr. Sarah Johnson", Role: "Neurologist", Specialty: "Dementia care",
			Organization: "Northwest Memory Center", Phone: "555-0200",
			Email: "s.johnson@nwmemory.example", IsPrimary: true},
		{ID: "ct2", Name: "Dr. Anil Mehta", Role: "Primary care physician", Specialty: "Geriatrics",
			Organization: "Rosewood Family Practice", Phone: "555-0214",
			Email: "a.mehta@rosewood.example"},
		{ID: "ct3", Name: "Ruth Calloway", Role: "Physical therapist", Specialty: "Mobility and falls",
			Organization: "HomeCare Allies", Phone: "555-0231",
			Email: "r.calloway@homecareallies.example"},
		{ID: "ct4", Name: "Mary Thompson", Role: "Family caregiver", Organization: "Family",
			Phone: "555-0142", Email: "mary.t@example.com"},
	}
}

func (g *Generator) goals() []careteam.Goal {
	return []careteam.Goal{
		{
			ID: "g1", Title: "Daily outdoor time", Category: "wellness",
			Description: "At least twenty minutes outside every day",
			Progress:    60, Status: careteam.GoalActive,
			Milestones: []careteam.Milestone{
				{ID: "g1-m1", Title: "Garden path cleared and lit", Completed: true},
				{ID: "g1-m2", Title: "Morning walk five days in a row", Completed: true},
				{ID: "g1-m3", Title: "Full week of daily walks", Completed: false},
			},
		},
		{
			ID: "g2", Title: "Medication routine without prompting", Category: "medical",
			Description: "Morning doses taken with breakfast reliably",
			Progress:    40, Status: careteam.GoalActive,
			Milestones: []careteam.Milestone{
				{ID: "g2-m1", Title: "Pillbox set up by the kettle", Completed: true},
				{ID: "g2-m2", Title: "Three unprompted mornings", Completed: false},
			},
		},
		{
			ID: "g3", Title: "Weekly family video call", Category: "social",
			Description: "Sunday call with David's family",
			Progress:    100, Status: careteam.GoalCompleted,
			Milestones: []careteam.Milestone{
				{ID: "g3-m1", Title: "Tablet stand installed", Completed: true},
				{ID: "g3-m2", Title: "Four calls in a row", Completed: true},
			},
		},
	}
}
