package patient

import (
	"testing"

	"github.com/carecompanion/carecompanion/internal/domain/alert"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/domain/task"
	"github.com/carecompanion/carecompanion/internal/domain/wellness"
)

func TestDisplayName(t *testing.T) {
	p := Patient{FirstName: "Eleanor", PreferredName: "Ellie"}
	if got := p.DisplayName(); got != "Ellie" {
		t.Errorf("DisplayName() = %q, want Ellie", got)
	}
	p.PreferredName = ""
	if got := p.DisplayName(); got != "Eleanor" {
		t.Errorf("DisplayName() = %q, want Eleanor", got)
	}
}

func TestSplitAffirmation_Default(t *testing.T) {
	headline, rest := Patient{}.SplitAffirmation()
	if headline != "You are safe" {
		t.Errorf("headline = %q, want default", headline)
	}
	if rest != "You are loved. You are at home." {
		t.Errorf("rest = %q, want default", rest)
	}
}

func TestSplitAffirmation_Custom(t *testing.T) {
	p := Patient{Affirmation: "Today is a good day. Your family loves you."}
	headline, rest := p.SplitAffirmation()
	if headline != "Today is a good day" {
		t.Errorf("headline = %q", headline)
	}
	if rest != "Your family loves you." {
		t.Errorf("rest = %q", rest)
	}
}

func TestSplitAffirmation_NoPeriod(t *testing.T) {
	headline, rest := Patient{Affirmation: "All is well"}.SplitAffirmation()
	if headline != "All is well" || rest != "" {
		t.Errorf("SplitAffirmation() = %q, %q, want whole string and empty rest", headline, rest)
	}
}

// ---------------------------------------------------------------------------
// Clone isolation
// ---------------------------------------------------------------------------

func TestClone_TopLevelSlicesIndependent(t *testing.T) {
	orig := Data{
		Patient: Patient{ID: "p1"},
		Tasks:   []task.Task{{ID: "t1", Status: task.StatusPending}},
		Alerts:  []alert.Alert{{ID: "a1"}},
		MedicationLogs: []medication.Log{
			{ID: "l1", Status: medication.StatusTaken},
		},
	}
	c1 := orig.Clone()

	c1.Tasks[0].Status = task.StatusCompleted
	c1.Alerts[0].IsRead = true
	c1.MedicationLogs = append(c1.MedicationLogs, medication.Log{ID: "l2"})

	if orig.Tasks[0].Status != task.StatusPending {
		t.Error("clone task edit reached the original")
	}
	if orig.Alerts[0].IsRead {
		t.Error("clone alert edit reached the original")
	}
	if len(orig.MedicationLogs) != 1 {
		t.Error("clone append reached the original")
	}
}

func TestClone_NestedSlicesIndependent(t *testing.T) {
	orig := Data{
		Patient: Patient{ID: "p1"},
		Medications: []medication.Medication{{
			ID:       "m1",
			Schedule: []medication.ScheduleEntry{{Time: "08:00"}},
		}},
		MoodEntries: []wellness.MoodEntry{{ID: "e1", Triggers: []string{"noise"}}},
	}
	c := orig.Clone()

	c.Medications[0].Schedule[0].Time = "09:00"
	c.MoodEntries[0].Triggers[0] = "crowds"

	if orig.Medications[0].Schedule[0].Time != "08:00" {
		t.Error("clone schedule edit reached the original")
	}
	if orig.MoodEntries[0].Triggers[0] != "noise" {
		t.Error("clone trigger edit reached the original")
	}
}

func TestClone_NilSlicesStayNil(t *testing.T) {
	c := Data{Patient: Patient{ID: "p1"}}.Clone()
	if c.Tasks != nil || c.Memories != nil {
		t.Error("Clone() materialized nil collections")
	}
}
