package store

import "github.com/carecompanion/carecompanion/internal/domain/patient"

// Reduce maps (state, action) to the next state. It is pure and total:
// shared slices are never mutated in place, and payloads referencing
// unknown ids fall through silently.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetView:
		if act.View.Valid() {
			s.View = act.View
		}
		return s

	case SetUser:
		u := act.User
		s.CurrentUser = &u
		return s

	case SetRole:
		s.Role = act.Role
		return s

	case SetAuthenticated:
		s.Authenticated = act.Authenticated
		return s

	case Logout:
		return Initial()

	case SelectPatient:
		s.SelectedPatientID = act.PatientID
		return s

	case LoadPatients:
		if len(s.Patients) > 0 {
			return s
		}
		s.Patients = act.Patients
		s.CareTeam = act.CareTeam
		s.Goals = act.Goals
		return s

	case MarkAlertRead:
		return markAlertRead(s, act.AlertID)

	case AddMedicationLog:
		return withPatient(s, act.Log.PatientID, func(d *patient.Data) {
			d.MedicationLogs = append(d.MedicationLogs, act.Log)
		})

	case AddMoodEntry:
		return withPatient(s, act.Entry.PatientID, func(d *patient.Data) {
			d.MoodEntries = append(d.MoodEntries, act.Entry)
		})

	case AddMemory:
		return withPatient(s, act.Memory.PatientID, func(d *patient.Data) {
			d.Memories = append(d.Memories, act.Memory)
		})

	case AddActivitySession:
		return withPatient(s, act.Session.PatientID, func(d *patient.Data) {
			d.Sessions = append(d.Sessions, act.Session)
		})

	case UpdateTask:
		return withPatient(s, act.Task.PatientID, func(d *patient.Data) {
			for i := range d.Tasks {
				if d.Tasks[i].ID == act.Task.ID {
					d.Tasks[i] = act.Task
					return
				}
			}
		})

	default:
		return s
	}
}

// withPatient applies mutate to a cloned copy of the targeted patient
// aggregate. The target is the payload's patient id, falling back to the
// current selection; when neither resolves the action is dropped.
func withPatient(s State, patientID string, mutate func(*patient.Data)) State {
	idx := indexOf(s.Patients, patientID)
	if idx < 0 {
		idx = indexOf(s.Patients, s.SelectedPatientID)
	}
	if idx < 0 {
		return s
	}
	patients := make([]patient.Data, len(s.Patients))
	copy(patients, s.Patients)
	d := patients[idx].Clone()
	mutate(&d)
	patients[idx] = d
	s.Patients = patients
	return s
}

func indexOf(patients []patient.Data, id string) int {
	if id == "" {
		return -1
	}
	for i := range patients {
		if patients[i].Patient.ID == id {
			return i
		}
	}
	return -1
}

// markAlertRead flags the alert wherever its id lives. Already-read alerts
// rewrite to the same value, so applying the action twice equals applying
// it once.
func markAlertRead(s State, alertID string) State {
	if alertID == "" {
		return s
	}
	for i := range s.Patients {
		for j := range s.Patients[i].Alerts {
			if s.Patients[i].Alerts[j].ID != alertID {
				continue
			}
			patients := make([]patient.Data, len(s.Patients))
			copy(patients, s.Patients)
			d := patients[i].Clone()
			d.Alerts[j].IsRead = true
			patients[i] = d
			s.Patients = patients
			return s
		}
	}
	return s
}
