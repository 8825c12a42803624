package store

import "testing"

func TestSelectedPatient_None(t *testing.T) {
	s := loadedState("p1")
	if got := s.SelectedPatient(); got != nil {
		t.Errorf("SelectedPatient() = %v with no selection, want nil", got)
	}
}

func TestSelectedPatient_Found(t *testing.T) {
	s := loadedState("p1", "p2")
	s = Reduce(s, SelectPatient{PatientID: "p2"})
	got := s.SelectedPatient()
	if got == nil || got.Patient.ID != "p2" {
		t.Errorf("SelectedPatient() = %v, want p2", got)
	}
}

func TestActivePatient_FallsBackToFirst(t *testing.T) {
	s := loadedState("p1", "p2")
	got := s.ActivePatient()
	if got == nil || got.Patient.ID != "p1" {
		t.Errorf("ActivePatient() = %v, want first patient p1", got)
	}
}

func TestActivePatient_PrefersSelection(t *testing.T) {
	s := loadedState("p1", "p2")
	s = Reduce(s, SelectPatient{PatientID: "p2"})
	got := s.ActivePatient()
	if got == nil || got.Patient.ID != "p2" {
		t.Errorf("ActivePatient() = %v, want selected p2", got)
	}
}

func TestActivePatient_EmptyRoster(t *testing.T) {
	if got := Initial().ActivePatient(); got != nil {
		t.Errorf("ActivePatient() = %v on empty state, want nil", got)
	}
}

func TestPatientCount(t *testing.T) {
	if got := loadedState("p1", "p2", "p3").PatientCount(); got != 3 {
		t.Errorf("PatientCount() = %d, want 3", got)
	}
}
