package alert

// RiskProfile is the one-line status a caregiver sees per patient in the
// multi-patient roster.
type RiskProfile string

const (
	RiskNeedsAttention RiskProfile = "needs-attention"
	RiskMonitor        RiskProfile = "monitor"
	RiskStable         RiskProfile = "stable"
)

// Rollup grades a patient: any open red safety alert wins, then any open
// yellow or unread notification, otherwise stable.
func Rollup(safety []SafetyAlert, alerts []Alert) RiskProfile {
	if CountUnresolved(safety, CategoryRed) > 0 {
		return RiskNeedsAttention
	}
	if CountUnresolved(safety, CategoryYellow) > 0 || CountUnread(alerts) > 0 {
		return RiskMonitor
	}
	return RiskStable
}
