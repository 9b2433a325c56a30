package questionnaire

import (
	"time"

	"aurelia-backend/internal/profile"
)

// WizardView is the API representation of a wizard.
type WizardView struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	Step        int             `json:"step"`
	StepName    string          `json:"stepName"`
	StepTitle   string          `json:"stepTitle"`
	TotalSteps  int             `json:"totalSteps"`
	Progress    float64         `json:"progress"`
	Answers     profile.Answers `json:"answers"`
	CanGoBack   bool            `json:"canGoBack"`
	CanGoNext   bool            `json:"canGoNext"`
	CanSubmit   bool            `json:"canSubmit"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	SubmittedAt *time.Time      `json:"submittedAt,omitempty"`
}

func toView(w Wizard) WizardView {
	answers := w.Answers.Clone()
	if answers.Concerns == nil {
		answers.Concerns = []string{}
	}
	open := !w.Submitted()
	return WizardView{
		ID:          w.ID,
		Status:      w.Status,
		Step:        int(w.Step),
		StepName:    w.Step.Name(),
		StepTitle:   w.Step.Title(),
		TotalSteps:  StepCount,
		Progress:    w.Progress(),
		Answers:     answers,
		CanGoBack:   open && w.Step > StepBasics,
		CanGoNext:   open && w.Step < StepPreferences,
		CanSubmit:   open && w.Step == StepPreferences,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		SubmittedAt: w.SubmittedAt,
	}
}
