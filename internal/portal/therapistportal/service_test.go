package therapistportal

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carecompanion/carecompanion/internal/domain/alert"
	"github.com/carecompanion/carecompanion/internal/domain/engagement"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/domain/patient"
	"github.com/carecompanion/carecompanion/internal/domain/wellness"
	"github.com/carecompanion/carecompanion/internal/store"
)

var caseNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func moodAt(hoursAgo, intensity int) wellness.MoodEntry {
	return wellness.MoodEntry{
		Mood:      wellness.MoodCalm,
		Intensity: intensity,
		Timestamp: caseNow.Add(-time.Duration(hoursAgo) * time.Hour),
	}
}

// decliningPatient trends downward over the week, carries an open red risk,
// and has missed half their doses.
func decliningPatient(id string) patient.Data {
	return patient.Data{
		Patient: patient.Patient{ID: id, FirstName: "Robert", LastName: "Williams"},
		MoodEntries: []wellness.MoodEntry{
			moodAt(6*24, 8), moodAt(5*24, 8),
			moodAt(24, 3), moodAt(12, 3),
		},
		BehaviorLogs: []wellness.BehaviorLog{
			{ID: id + "-b1", PatientID: id, Behavior: "Agitation", Severity: wellness.SeveritySevere},
			{ID: id + "-b2", PatientID: id, Behavior: "Pacing", Severity: wellness.SeverityModerate},
			{ID: id + "-b3", PatientID: id, Behavior: "Repetition", Severity: wellness.SeverityMild},
		},
		MedicationLogs: []medication.Log{
			{ID: id + "-l1", PatientID: id, Status: medication.StatusTaken},
			{ID: id + "-l2", PatientID: id, Status: medication.StatusMissed},
		},
		SafetyAlerts: []alert.SafetyAlert{
			{ID: id + "-s1", PatientID: id, Title: "Wandering at night", Category: alert.CategoryRed},
		},
		Sessions: []engagement.ActivitySession{
			{ID: id + "-as1", PatientID: id},
			{ID: id + "-as2", PatientID: id},
		},
	}
}

func quietPatient(id string) patient.Data {
	return patient.Data{
		Patient: patient.Patient{ID: id, FirstName: "Grace", LastName: "Kim"},
	}
}

func newTestService(t *testing.T, data ...patient.Data) *Service {
	t.Helper()
	st := store.New(store.Initial(), zerolog.Nop())
	t.Cleanup(st.Close)
	if err := st.Dispatch(context.Background(), store.LoadPatients{Patients: data}); err != nil {
		t.Fatalf("load patients: %v", err)
	}
	svc := New(st, zerolog.Nop())
	svc.SetClock(func() time.Time { return caseNow })
	return svc
}

// ---------------------------------------------------------------------------
// caseload
// ---------------------------------------------------------------------------

func TestCaseload_InsightPerPatient(t *testing.T) {
	svc := newTestService(t, decliningPatient("p1"), quietPatient("p2"))
	view := svc.Caseload()
	if len(view.Cases) != 2 {
		t.Fatalf("Cases = %d, want 2", len(view.Cases))
	}

	c := view.Cases[0]
	if c.Risk != alert.RiskNeedsAttention {
		t.Errorf("p1 risk = %q, want needs-attention", c.Risk)
	}
	if c.MoodTrend != wellness.TrendDeclining {
		t.Errorf("p1 trend = %q, want declining", c.MoodTrend)
	}
	if c.MoodAverage != 5.5 {
		t.Errorf("p1 mood average = %v, want 5.5", c.MoodAverage)
	}
	if c.MoodEntryCount != 4 {
		t.Errorf("p1 mood entries = %d, want 4", c.MoodEntryCount)
	}
	if c.SevereEvents != 1 || c.ModerateEvents != 1 {
		t.Errorf("p1 events = %d severe, %d moderate, want 1 and 1", c.SevereEvents, c.ModerateEvents)
	}
	if c.Adherence != 50 {
		t.Errorf("p1 adherence = %d, want 50", c.Adherence)
	}
	if c.OpenRisks != 1 {
		t.Errorf("p1 open risks = %d, want 1", c.OpenRisks)
	}
	if c.SessionCount != 2 {
		t.Errorf("p1 sessions = %d, want 2", c.SessionCount)
	}
}

func TestCaseload_QuietPatientReadsStable(t *testing.T) {
	svc := newTestService(t, quietPatient("p1"))
	c := svc.Caseload().Cases[0]
	if c.Risk != alert.RiskStable {
		t.Errorf("risk = %q, want stable", c.Risk)
	}
	if c.MoodTrend != wellness.TrendStable {
		t.Errorf("trend = %q, want stable", c.MoodTrend)
	}
	if c.Adherence != 100 {
		t.Errorf("adherence with no dose history = %d, want 100", c.Adherence)
	}
}

func TestCaseload_AggregateCounters(t *testing.T) {
	svc := newTestService(t, decliningPatient("p1"), quietPatient("p2"))
	view := svc.Caseload()
	if view.NeedsAttention != 1 {
		t.Errorf("NeedsAttention = %d, want 1", view.NeedsAttention)
	}
	if view.Declining != 1 {
		t.Errorf("Declining = %d, want 1", view.Declining)
	}
}

func TestCaseload_Empty(t *testing.T) {
	svc := newTestService(t)
	view := svc.Caseload()
	if len(view.Cases) != 0 || view.NeedsAttention != 0 || view.Declining != 0 {
		t.Errorf("empty caseload = %+v, want all zero", view)
	}
}

// ---------------------------------------------------------------------------
// case detail
// ---------------------------------------------------------------------------

func TestCase_Found(t *testing.T) {
	svc := newTestService(t, decliningPatient("p1"), quietPatient("p2"))
	detail, ok := svc.Case("p1")
	if !ok {
		t.Fatal("Case(p1) not ok")
	}
	if detail.Insight.Patient.ID != "p1" {
		t.Errorf("Insight.Patient.ID = %q, want p1", detail.Insight.Patient.ID)
	}
	if len(detail.MoodEntries) != 4 || len(detail.BehaviorLogs) != 3 {
		t.Errorf("history = %d moods, %d behaviors, want 4 and 3",
			len(detail.MoodEntries), len(detail.BehaviorLogs))
	}
	if detail.MoodCounts[wellness.MoodCalm] != 4 {
		t.Errorf("MoodCounts[calm] = %d, want 4", detail.MoodCounts[wellness.MoodCalm])
	}
	if detail.Insight.MoodTrend != wellness.TrendDeclining {
		t.Errorf("detail trend = %q, want declining", detail.Insight.MoodTrend)
	}
}

func TestCase_Unknown(t *testing.T) {
	svc := newTestService(t, quietPatient("p1"))
	if _, ok := svc.Case("ghost"); ok {
		t.Error("Case(ghost) ok, want not found")
	}
}
