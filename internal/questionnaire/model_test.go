package questionnaire

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurelia-backend/internal/profile"
)

func strPtr(s string) *string { return &s }

func newTestWizard() Wizard {
	return NewWizard("wiz-1", "guest:a", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestWizardStartsOnBasics(t *testing.T) {
	w := newTestWizard()
	assert.Equal(t, StepBasics, w.Step)
	assert.Equal(t, StatusInProgress, w.Status)
	assert.InDelta(t, 1.0/3, w.Progress(), 1e-9)
	assert.Empty(t, w.Answers.Concerns)
}

func TestWizardNavigation(t *testing.T) {
	w := newTestWizard()

	require.ErrorIs(t, w.Back(), ErrNoPreviousStep)
	require.NoError(t, w.Next())
	assert.Equal(t, StepConcerns, w.Step)
	assert.InDelta(t, 2.0/3, w.Progress(), 1e-9)
	require.NoError(t, w.Next())
	assert.Equal(t, StepPreferences, w.Step)
	assert.InDelta(t, 1.0, w.Progress(), 1e-9)
	require.ErrorIs(t, w.Next(), ErrNoNextStep)
	require.NoError(t, w.Back())
	assert.Equal(t, StepConcerns, w.Step)
}

func TestToggleConcernOnlyOnConcernsStep(t *testing.T) {
	w := newTestWizard()
	_, err := w.ToggleConcern("Acne")
	require.ErrorIs(t, err, ErrWrongStep)

	require.NoError(t, w.Next())
	selected, err := w.ToggleConcern("Acne")
	require.NoError(t, err)
	assert.True(t, selected)

	_, err = w.ToggleConcern("Freckles")
	require.ErrorIs(t, err, profile.ErrInvalidOption)
}

func TestToggleConcernTwiceRestoresSet(t *testing.T) {
	w := newTestWizard()
	require.NoError(t, w.Next())
	_, _ = w.ToggleConcern("Acne")
	_, _ = w.ToggleConcern("Redness")
	before := append([]string(nil), w.Answers.Concerns...)

	selected, err := w.ToggleConcern("Wrinkles")
	require.NoError(t, err)
	assert.True(t, selected)
	selected, err = w.ToggleConcern("Wrinkles")
	require.NoError(t, err)
	assert.False(t, selected)

	assert.Equal(t, before, w.Answers.Concerns)
}

func TestApplyBindsFieldsToSteps(t *testing.T) {
	w := newTestWizard()

	require.NoError(t, w.Apply(profile.AnswerPatch{SkinType: strPtr("Oily"), AgeGroup: strPtr("18 - 25")}))
	assert.Equal(t, "Oily", w.Answers.SkinType)

	err := w.Apply(profile.AnswerPatch{Budget: strPtr("High (₹1500+)")})
	require.ErrorIs(t, err, ErrWrongStep)
	assert.Empty(t, w.Answers.Budget)

	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.Apply(profile.AnswerPatch{Budget: strPtr("High (₹1500+)"), AllergyNotes: strPtr("fragrance")}))
	assert.Equal(t, "fragrance", w.Answers.AllergyNotes)

	err = w.Apply(profile.AnswerPatch{SkinType: strPtr("Dry")})
	require.ErrorIs(t, err, ErrWrongStep)
	assert.Equal(t, "Oily", w.Answers.SkinType)
}

func TestApplyRejectsUnknownOptions(t *testing.T) {
	w := newTestWizard()
	err := w.Apply(profile.AnswerPatch{SkinType: strPtr("Scaly")})
	require.ErrorIs(t, err, profile.ErrInvalidOption)
	assert.Empty(t, w.Answers.SkinType)
}

func TestSubmitIsTerminal(t *testing.T) {
	w := newTestWizard()
	require.ErrorIs(t, w.CanSubmit(), ErrWrongStep)

	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.MarkSubmitted(time.Now()))
	assert.True(t, w.Submitted())
	assert.InDelta(t, 1.0, w.Progress(), 1e-9)

	for name, op := range map[string]func() error{
		"next":   w.Next,
		"back":   w.Back,
		"submit": w.CanSubmit,
		"apply":  func() error { return w.Apply(profile.AnswerPatch{}) },
		"toggle": func() error { _, err := w.ToggleConcern("Acne"); return err },
	} {
		if err := op(); !errors.Is(err, ErrSubmitted) {
			t.Fatalf("%s: expected ErrSubmitted, got %v", name, err)
		}
	}
}
