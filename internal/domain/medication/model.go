package medication

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// LogStatus tracks what happened to a single scheduled dose.
type LogStatus string

const (
	StatusTaken   LogStatus = "taken"
	StatusMissed  LogStatus = "missed"
	StatusPending LogStatus = "pending"
)

var validLogStatuses = map[LogStatus]bool{
	StatusTaken: true, StatusMissed: true, StatusPending: true,
}

// Valid reports whether s is a known log status.
func (s LogStatus) Valid() bool { return validLogStatuses[s] }

// TimeOfDay buckets a clock time for display grouping.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// ScheduleEntry is one recurring dose time, as a 24h "HH:MM" clock string.
type ScheduleEntry struct {
	Time string `json:"time"`
}

// Medication is one prescribed drug with its dosing schedule.
type Medication struct {
	ID           string          `json:"id"`
	PatientID    string          `json:"patient_id"`
	Name         string          `json:"name"`
	Dosage       string          `json:"dosage"`
	Form         string          `json:"form"`
	Instructions string          `json:"instructions,omitempty"`
	PrescribedBy string          `json:"prescribed_by,omitempty"`
	Schedule     []ScheduleEntry `json:"schedule"`
	SideEffects  []string        `json:"side_effects,omitempty"`
	IsActive     bool            `json:"is_active"`
}

// Log records the outcome of one scheduled dose on one day. Logs are
// append-only; marking the same dose twice produces two rows.
type Log struct {
	ID             string     `json:"id"`
	MedicationID   string     `json:"medication_id"`
	PatientID      string     `json:"patient_id"`
	MedicationName string     `json:"medication_name,omitempty"`
	ScheduledTime  string     `json:"scheduled_time"`
	TakenTime      *time.Time `json:"taken_time,omitempty"`
	Status         LogStatus  `json:"status"`
	RecordedBy     string     `json:"recorded_by,omitempty"`
	Date           string     `json:"date"` // day key, "2006-01-02"
}

// DayKey formats t as the log day-bucket key.
func DayKey(t time.Time) string { return t.Format("2006-01-02") }

// TimeOfDayFor buckets an "HH:MM" clock string. Unparseable input lands in
// the night bucket.
func TimeOfDayFor(clock string) TimeOfDay {
	h, ok := parseHour(clock)
	if !ok {
		return Night
	}
	switch {
	case h >= 6 && h < 12:
		return Morning
	case h >= 12 && h < 17:
		return Afternoon
	case h >= 17 && h < 21:
		return Evening
	default:
		return Night
	}
}

func parseHour(clock string) (int, bool) {
	i := strings.IndexByte(clock, ':')
	if i <= 0 {
		return 0, false
	}
	h, err := strconv.Atoi(clock[:i])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// Dose is one concrete scheduled administration: a medication crossed with
// one of its schedule entries.
type Dose struct {
	Medication Medication
	Time       string
	TimeOfDay  TimeOfDay
}

// ExpandDoses flattens the active medications into their scheduled doses,
// sorted by clock time. Inactive medications are skipped.
func ExpandDoses(meds []Medication) []Dose {
	var doses []Dose
	for _, m := range meds {
		if !m.IsActive {
			continue
		}
		for _, s := range m.Schedule {
			doses = append(doses, Dose{
				Medication: m,
				Time:       s.Time,
				TimeOfDay:  TimeOfDayFor(s.Time),
			})
		}
	}
	sort.SliceStable(doses, func(i, j int) bool { return doses[i].Time < doses[j].Time })
	return doses
}

// StatusFor returns the recorded status of a dose among the given day's
// logs, or pending when nothing has been recorded.
func StatusFor(logs []Log, medicationID, scheduledTime string) LogStatus {
	for _, l := range logs {
		if l.MedicationID == medicationID && l.ScheduledTime == scheduledTime {
			return l.Status
		}
	}
	return StatusPending
}

// LogsForDay filters logs to a single day bucket.
func LogsForDay(logs []Log, dayKey string) []Log {
	var out []Log
	for _, l := range logs {
		if l.Date == dayKey {
			out = append(out, l)
		}
	}
	return out
}

// CountByStatus counts logs with the given status.
func CountByStatus(logs []Log, status LogStatus) int {
	n := 0
	for _, l := range logs {
		if l.Status == status {
			n++
		}
	}
	return n
}

// AdherenceRate returns taken / (taken + missed) as a 0–100 percentage.
// Pending doses do not count against adherence. No history means 100.
func AdherenceRate(logs []Log) int {
	taken := CountByStatus(logs, StatusTaken)
	missed := CountByStatus(logs, StatusMissed)
	if taken+missed == 0 {
		return 100
	}
	return taken * 100 / (taken + missed)
}
