package caregiverportal

// EducationModule is one entry of the caregiver learning catalog. Progress
// is a mocked percentage until real course tracking exists.
type EducationModule struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DurationMin int    `json:"durationMin"`
	Progress    int    `json:"progress"`
}

var educationModules = []EducationModule{
	{
		ID:          "1",
		Title:       "Understanding Dementia",
		Description: "Learn about the different types of dementia and how they affect the brain.",
		Category:    "dementia_basics",
		DurationMin: 15,
		Progress:    100,
	},
	{
		ID:          "2",
		Title:       "Effective Communication",
		Description: "Techniques for communicating with someone who has dementia.",
		Category:    "communication",
		DurationMin: 20,
		Progress:    60,
	},
	{
		ID:          "3",
		Title:       "Managing Challenging Behaviors",
		Description: "Strategies for handling difficult behaviors with compassion.",
		Category:    "behavior_management",
		DurationMin: 25,
		Progress:    0,
	},
	{
		ID:          "4",
		Title:       "Caregiver Self-Care",
		Description: "Importance of taking care of yourself while caring for others.",
		Category:    "self_care",
		DurationMin: 10,
		Progress:    0,
	},
}

// EducationView is the education screen: the catalog plus completion rollup.
type EducationView struct {
	Modules        []EducationModule
	CompletedCount int
	Total          int
}

// Education lists the learning modules, optionally filtered by category.
// An empty or "all" category returns everything.
func (s *Service) Education(category string) EducationView {
	view := EducationView{Total: len(educationModules)}
	for _, m := range educationModules {
		if m.Progress == 100 {
			view.CompletedCount++
		}
		if category == "" || category == "all" || m.Category == category {
			view.Modules = append(view.Modules, m)
		}
	}
	return view
}
