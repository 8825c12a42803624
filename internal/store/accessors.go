package store

import "github.com/carecompanion/carecompanion/internal/domain/patient"

// Derived read-only projections over the state. These are recomputed on
// every call; callers must not cache them across dispatches.

// SelectedPatient returns the aggregate matching SelectedPatientID, or nil
// when nothing is selected or the id dangles. Not-found and none-selected
// are deliberately indistinguishable.
func (s State) SelectedPatient() *patient.Data {
	if i := indexOf(s.Patients, s.SelectedPatientID); i >= 0 {
		d := s.Patients[i]
		return &d
	}
	return nil
}

// ActivePatient resolves the patient the single-patient screens operate on:
// the selection when set, otherwise the first loaded patient. The patient
// portal always lands here since its user is the patient.
func (s State) ActivePatient() *patient.Data {
	if d := s.SelectedPatient(); d != nil {
		return d
	}
	if len(s.Patients) > 0 {
		d := s.Patients[0]
		return &d
	}
	return nil
}

// AllPatients returns the loaded aggregates.
func (s State) AllPatients() []patient.Data {
	return s.Patients
}

// PatientCount returns how many patients are loaded.
func (s State) PatientCount() int {
	return len(s.Patients)
}
