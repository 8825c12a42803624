package careteam

// CareTeamMember is one professional or family member involved in care.
type CareTeamMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Specialty    string `json:"specialty,omitempty"`
	Organization string `json:"organization,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	IsPrimary    bool   `json:"is_primary"`
}

// GoalStatus is the lifecycle state of a care goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

// Milestone is one checkable step toward a goal.
type Milestone struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Goal is a long-running care objective tracked by progress percentage and
// an ordered milestone list.
type Goal struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Progress    int         `json:"progress"` // 0..100
	Status      GoalStatus  `json:"status"`
	Milestones  []Milestone `json:"milestones,omitempty"`
}

// MilestoneProgress derives a 0–100 percentage from completed milestones,
// falling back to the stored Progress when no milestones exist.
func (g Goal) MilestoneProgress() int {
	if len(g.Milestones) == 0 {
		return g.Progress
	}
	done := 0
	for _, m := range g.Milestones {
		if m.Completed {
			done++
		}
	}
	return done * 100 / len(g.Milestones)
}
