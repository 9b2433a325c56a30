package questionnaire

import (
	"fmt"
	"time"

	"aurelia-backend/internal/profile"
)

// Step identifies a page of the questionnaire.
type Step int

const (
	StepBasics Step = iota
	StepConcerns
	StepPreferences
)

// StepCount is the number of pages before submission.
const StepCount = 3

const (
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
)

func (s Step) Name() string {
	switch s {
	case StepBasics:
		return "basics"
	case StepConcerns:
		return "concerns"
	case StepPreferences:
		return "preferences"
	default:
		return "unknown"
	}
}

func (s Step) Title() string {
	switch s {
	case StepBasics:
		return "Skin Basics"
	case StepConcerns:
		return "Skin Concerns"
	case StepPreferences:
		return "Preferences"
	default:
		return ""
	}
}

// Wizard is one visitor's pass through the questionnaire.
type Wizard struct {
	ID          string
	VisitorID   string
	Step        Step
	Status      string
	Answers     profile.Answers
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmittedAt *time.Time
}

// NewWizard returns a wizard on the first step with nothing answered.
func NewWizard(id, visitorID string, now time.Time) Wizard {
	return Wizard{
		ID:        id,
		VisitorID: visitorID,
		Step:      StepBasics,
		Status:    StatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (w *Wizard) Submitted() bool {
	return w.Status == StatusSubmitted
}

// Progress is the completed fraction in (0, 1].
func (w *Wizard) Progress() float64 {
	if w.Submitted() {
		return 1
	}
	return float64(w.Step+1) / StepCount
}

func (w *Wizard) Next() error {
	if w.Submitted() {
		return ErrSubmitted
	}
	if w.Step >= StepPreferences {
		return ErrNoNextStep
	}
	w.Step++
	return nil
}

func (w *Wizard) Back() error {
	if w.Submitted() {
		return ErrSubmitted
	}
	if w.Step <= StepBasics {
		return ErrNoPreviousStep
	}
	w.Step--
	return nil
}

// ToggleConcern flips tag on the concerns step and reports whether it is now selected.
func (w *Wizard) ToggleConcern(tag string) (bool, error) {
	if w.Submitted() {
		return false, ErrSubmitted
	}
	if w.Step != StepConcerns {
		return false, fmt.Errorf("%w: concerns are chosen on the %s step", ErrWrongStep, StepConcerns.Name())
	}
	if err := profile.ValidateConcern(tag); err != nil {
		return false, err
	}
	return w.Answers.ToggleConcern(tag), nil
}

// Apply writes the provided fields. Each field may only be set on the step
// that asks for it; the patch is applied only if every field is allowed.
func (w *Wizard) Apply(patch profile.AnswerPatch) error {
	if w.Submitted() {
		return ErrSubmitted
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	if (patch.SkinType != nil || patch.AgeGroup != nil) && w.Step != StepBasics {
		return fmt.Errorf("%w: skin type and age group are set on the %s step", ErrWrongStep, StepBasics.Name())
	}
	if (patch.AllergyNotes != nil || patch.Budget != nil) && w.Step != StepPreferences {
		return fmt.Errorf("%w: allergies and budget are set on the %s step", ErrWrongStep, StepPreferences.Name())
	}
	if patch.SkinType != nil {
		w.Answers.SkinType = *patch.SkinType
	}
	if patch.AgeGroup != nil {
		w.Answers.AgeGroup = *patch.AgeGroup
	}
	if patch.AllergyNotes != nil {
		w.Answers.AllergyNotes = *patch.AllergyNotes
	}
	if patch.Budget != nil {
		w.Answers.Budget = *patch.Budget
	}
	return nil
}

// CanSubmit reports whether Submit is currently allowed.
func (w *Wizard) CanSubmit() error {
	if w.Submitted() {
		return ErrSubmitted
	}
	if w.Step != StepPreferences {
		return fmt.Errorf("%w: submit is only available on the %s step", ErrWrongStep, StepPreferences.Name())
	}
	return nil
}

// MarkSubmitted moves the wizard into its terminal state.
func (w *Wizard) MarkSubmitted(now time.Time) error {
	if err := w.CanSubmit(); err != nil {
		return err
	}
	w.Status = StatusSubmitted
	w.SubmittedAt = &now
	return nil
}

// Clone returns a deep copy.
func (w Wizard) Clone() Wizard {
	out := w
	out.Answers = w.Answers.Clone()
	if w.SubmittedAt != nil {
		t := *w.SubmittedAt
		out.SubmittedAt = &t
	}
	return out
}
