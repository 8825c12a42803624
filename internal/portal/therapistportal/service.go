// Package therapistportal computes the clinician's read-only caseload view.
// Therapists observe trends across every patient; all writes happen through
// the patient and caregiver portals.
package therapistportal

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/carecompanion/carecompanion/internal/domain/alert"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/domain/patient"
	"github.com/carecompanion/carecompanion/internal/domain/wellness"
	"github.com/carecompanion/carecompanion/internal/store"
)

// Service serves the therapist portal.
type Service struct {
	store *store.Store
	log   zerolog.Logger
	now   func() time.Time
}

// New creates the therapist portal service.
func New(st *store.Store, log zerolog.Logger) *Service {
	return &Service{store: st, log: log, now: time.Now}
}

// SetClock overrides the service clock. Test hook.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// trendWindow bounds the mood history considered for trend grading.
const trendWindow = 7 * 24 * time.Hour

// CaseInsight is the clinician's summary for one patient.
type CaseInsight struct {
	Patient        patient.Patient
	Risk           alert.RiskProfile
	MoodAverage    float64
	MoodTrend      wellness.MoodTrend
	MoodEntryCount int
	SevereEvents   int
	ModerateEvents int
	Adherence      int
	OpenRisks      int
	SessionCount   int
}

// CaseloadView is the whole caseload with aggregate counters.
type CaseloadView struct {
	Cases          []CaseInsight
	NeedsAttention int
	Declining      int
}

// Caseload builds the insight row for every patient under care.
func (s *Service) Caseload() CaseloadView {
	snap := s.store.Snapshot()
	now := s.now()
	view := CaseloadView{Cases: make([]CaseInsight, 0, len(snap.Patients))}
	for _, d := range snap.Patients {
		bySeverity := wellness.CountBySeverity(d.BehaviorLogs)
		c := CaseInsight{
			Patient:        d.Patient,
			Risk:           alert.Rollup(d.SafetyAlerts, d.Alerts),
			MoodAverage:    wellness.AverageIntensity(d.MoodEntries),
			MoodTrend:      wellness.TrendFor(d.MoodEntries, now, trendWindow),
			MoodEntryCount: len(d.MoodEntries),
			SevereEvents:   bySeverity[wellness.SeveritySevere],
			ModerateEvents: bySeverity[wellness.SeverityModerate],
			Adherence:      medication.AdherenceRate(d.MedicationLogs),
			OpenRisks: alert.CountUnresolved(d.SafetyAlerts, alert.CategoryRed) +
				alert.CountUnresolved(d.SafetyAlerts, alert.CategoryYellow),
			SessionCount: len(d.Sessions),
		}
		if c.Risk == alert.RiskNeedsAttention {
			view.NeedsAttention++
		}
		if c.MoodTrend == wellness.TrendDeclining {
			view.Declining++
		}
		view.Cases = append(view.Cases, c)
	}
	return view
}

// CaseDetail is the expanded record for one patient.
type CaseDetail struct {
	Insight      CaseInsight
	MoodEntries  []wellness.MoodEntry
	BehaviorLogs []wellness.BehaviorLog
	MoodCounts   map[wellness.Mood]int
}

// Case returns the detail view for one patient. ok is false when the id is
// unknown.
func (s *Service) Case(patientID string) (CaseDetail, bool) {
	snap := s.store.Snapshot()
	now := s.now()
	for _, d := range snap.Patients {
		if d.Patient.ID != patientID {
			continue
		}
		bySeverity := wellness.CountBySeverity(d.BehaviorLogs)
		return CaseDetail{
			Insight: CaseInsight{
				Patient:        d.Patient,
				Risk:           alert.Rollup(d.SafetyAlerts, d.Alerts),
				MoodAverage:    wellness.AverageIntensity(d.MoodEntries),
				MoodTrend:      wellness.TrendFor(d.MoodEntries, now, trendWindow),
				MoodEntryCount: len(d.MoodEntries),
				SevereEvents:   bySeverity[wellness.SeveritySevere],
				ModerateEvents: bySeverity[wellness.SeverityModerate],
				Adherence:      medication.AdherenceRate(d.MedicationLogs),
				OpenRisks: alert.CountUnresolved(d.SafetyAlerts, alert.CategoryRed) +
					alert.CountUnresolved(d.SafetyAlerts, alert.CategoryYellow),
				SessionCount: len(d.Sessions),
			},
			MoodEntries:  d.MoodEntries,
			BehaviorLogs: d.BehaviorLogs,
			MoodCounts:   wellness.CountByMood(d.MoodEntries),
		}, true
	}
	return CaseDetail{}, false
}
