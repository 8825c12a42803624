package caregiverportal

// CrisisGuide is a quick-reference playbook for a challenging situation.
type CrisisGuide struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// EmergencyContact is a one-tap crisis line.
type EmergencyContact struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Type        string `json:"type"` // emergency or support
	Description string `json:"description"`
}

var crisisGuides = []CrisisGuide{
	{
		ID:          "agitation",
		Title:       "Agitation & Restlessness",
		Description: "When patient becomes agitated, restless, or aggressive",
		Steps: []string{
			"Stay calm and speak in a soft, reassuring voice",
			"Identify and remove triggers (noise, crowds, unfamiliar people)",
			`Validate their feelings: "I can see you're upset"`,
			"Offer a distraction: music, photos, or a familiar activity",
			"Ensure safety - remove objects that could cause harm",
			"If escalation continues, call for backup support",
		},
	},
	{
		ID:          "wandering",
		Title:       "Wandering & Elopement",
		Description: "When patient tries to leave or wanders unsafely",
		Steps: []string{
			"Stay with the patient - do not leave them unattended",
			`Gently redirect: "Let's go this way together"`,
			"Identify the underlying need (bathroom, hungry, bored)",
			"Use visual barriers on doors (curtains, stop signs)",
			"Ensure ID bracelet is worn at all times",
			"If missing, check common places first (car, previous home)",
		},
	},
	{
		ID:          "sundowning",
		Title:       "Sundowning",
		Description: "Increased confusion and agitation in late afternoon/evening",
		Steps: []string{
			"Close curtains and turn on lights before sunset",
			"Maintain a consistent evening routine",
			"Reduce noise and stimulation (TV, visitors)",
			"Offer a comforting activity: music, hand massage",
			"Avoid caffeine and heavy meals in the evening",
			"Consider melatonin (consult doctor first)",
		},
	},
	{
		ID:          "hallucinations",
		Title:       "Hallucinations & Delusions",
		Description: "When patient sees or believes things that aren't real",
		Steps: []string{
			"Do not argue or try to convince them it's not real",
			`Validate the emotion: "That sounds frightening"`,
			"Redirect to a pleasant activity or environment",
			"Check for physical causes (UTI, medication side effects)",
			"Ensure good lighting to reduce shadows",
			"Document frequency and content for doctor review",
		},
	},
	{
		ID:          "refusal",
		Title:       "Care Refusal",
		Description: "When patient refuses medication, bathing, or care",
		Steps: []string{
			"Do not force - this can escalate to aggression",
			"Try again later when they may be more receptive",
			"Simplify the task or break it into smaller steps",
			`Use distraction: "Let's have a snack first"`,
			`Offer choices: "Shower now or after lunch?"`,
			"Consider if timing, environment, or approach needs change",
		},
	},
	{
		ID:          "repetition",
		Title:       "Repetitive Behaviors",
		Description: "Repeated questions, phrases, or actions",
		Steps: []string{
			"Answer calmly each time - they truly don't remember",
			"Use written cues or memory aids if helpful",
			"Distract with an engaging activity",
			"Identify triggers (boredom, anxiety, unmet need)",
			"Take breaks - this behavior is exhausting for caregivers",
			"Join a support group to share coping strategies",
		},
	},
}

var emergencyContacts = []EmergencyContact{
	{Name: "911", Number: "911", Type: "emergency", Description: "For immediate medical emergencies"},
	{Name: "Poison Control", Number: "1-800-222-1222", Type: "emergency", Description: "24/7 poison helpline"},
	{Name: "Crisis Text Line", Number: "Text HOME to 741741", Type: "support", Description: "Mental health support"},
	{Name: "Alzheimer's Helpline", Number: "1-800-272-3900", Type: "support", Description: "24/7 dementia support"},
}
