package entities

// Wizard step keys in their fixed order.
const (
	StepPersonal     = "personal"
	StepProfessional = "professional"
	StepExpertise    = "expertise"
	StepAvailability = "availability"
	StepMotivation   = "motivation"
	StepReview       = "review"
)

// WizardStep names one page of the judge application and the answer fields it owns.
type WizardStep struct {
	Index  int      `json:"index"`
	Key    string   `json:"key"`
	Fields []string `json:"fields"`
}

// WizardSteps is the judge application flow. Fields use JSON names.
var WizardSteps = []WizardStep{
	{Index: 0, Key: StepPersonal, Fields: []string{"fullName", "email", "phone"}},
	{Index: 1, Key: StepProfessional, Fields: []string{"company", "jobTitle", "yearsExperience", "linkedinUrl"}},
	{Index: 2, Key: StepExpertise, Fields: []string{"expertise", "bio"}},
	{Index: 3, Key: StepAvailability, Fields: []string{"availability", "hoursPerWeek"}},
	{Index: 4, Key: StepMotivation, Fields: []string{"motivation", "previousJudging"}},
	{Index: 5, Key: StepReview, Fields: []string{"agreeToTerms"}},
}

// LastStep is the index of the review step.
func LastStep() int { return len(WizardSteps) - 1 }

// StepIndex resolves a step key or returns -1.
func StepIndex(key string) int {
	for _, s := range WizardSteps {
		if s.Key == key {
			return s.Index
		}
	}
	return -1
}

// MergeStep copies the fields owned by step from src onto a.
func (a *ApplicationAnswers) MergeStep(step int, src ApplicationAnswers) {
	switch step {
	case 0:
		a.FullName = src.FullName
		a.Email = src.Email
		a.Phone = src.Phone
	case 1:
		a.Company = src.Company
		a.JobTitle = src.JobTitle
		a.YearsExperience = src.YearsExperience
		a.LinkedinURL = src.LinkedinURL
	case 2:
		a.Expertise = append([]string(nil), src.Expertise...)
		a.Bio = src.Bio
	case 3:
		a.Availability = src.Availability
		a.HoursPerWeek = src.HoursPerWeek
	case 4:
		a.Motivation = src.Motivation
		a.PreviousJudging = src.PreviousJudging
	case 5:
		a.AgreeToTerms = src.AgreeToTerms
	}
}

// ReviewInput carries a reviewer's note.
type ReviewInput struct {
	Note string `json:"note" validate:"max=2000"`
}
