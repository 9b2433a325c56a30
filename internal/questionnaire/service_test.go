package questionnaire

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurelia-backend/internal/profile"
	"aurelia-backend/internal/recommendations"
	"aurelia-backend/internal/results"
)

type failingStore struct {
	results.Store
	saveErr error
}

func (s failingStore) Save(context.Context, string, recommendations.Result) error {
	return s.saveErr
}

func newTestService(store results.Store) *Service {
	return NewService(NewMemoryRepo(), store)
}

func walkToPreferences(t *testing.T, svc *Service, visitorID, id string) {
	t.Helper()
	for i := 0; i < 2; i++ {
		if _, err := svc.Next(context.Background(), visitorID, id); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
}

func TestSubmitStoresDerivedResult(t *testing.T) {
	ctx := context.Background()
	store := results.NewMemoryStore()
	svc := newTestService(store)
	const visitor = "guest:a"

	w, err := svc.Start(ctx, visitor)
	require.NoError(t, err)
	_, err = svc.UpdateAnswers(ctx, visitor, w.ID, profile.AnswerPatch{SkinType: strPtr("Oily")})
	require.NoError(t, err)
	_, err = svc.Next(ctx, visitor, w.ID)
	require.NoError(t, err)
	_, _, err = svc.ToggleConcern(ctx, visitor, w.ID, "Acne")
	require.NoError(t, err)
	_, _, err = svc.ToggleConcern(ctx, visitor, w.ID, "Oiliness")
	require.NoError(t, err)
	_, err = svc.Next(ctx, visitor, w.ID)
	require.NoError(t, err)
	_, err = svc.UpdateAnswers(ctx, visitor, w.ID, profile.AnswerPatch{Budget: strPtr("Low (under ₹500)")})
	require.NoError(t, err)

	submitted, result, err := svc.Submit(ctx, visitor, w.ID)
	require.NoError(t, err)
	assert.True(t, submitted.Submitted())

	stored, ok, err := store.Load(ctx, visitor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Oily", stored.SkinType)
	assert.Equal(t, "Acne, Oiliness", stored.ConcernsSummary)
	assert.Equal(t, "Low (under ₹500)", stored.BudgetLabel)
	if diff := cmp.Diff(result, stored); diff != "" {
		t.Fatalf("stored result mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitWithNothingAnsweredStoresDefaults(t *testing.T) {
	ctx := context.Background()
	store := results.NewMemoryStore()
	svc := newTestService(store)

	w, err := svc.Start(ctx, "guest:a")
	require.NoError(t, err)
	walkToPreferences(t, svc, "guest:a", w.ID)
	_, _, err = svc.Submit(ctx, "guest:a", w.ID)
	require.NoError(t, err)

	stored, ok, _ := store.Load(ctx, "guest:a")
	require.True(t, ok)
	if diff := cmp.Diff(recommendations.Defaults(), stored); diff != "" {
		t.Fatalf("expected all-defaults payload (-want +got):\n%s", diff)
	}
}

func TestSubmitFailureKeepsWizardOpen(t *testing.T) {
	ctx := context.Background()
	store := failingStore{Store: results.NewMemoryStore(), saveErr: errors.New("disk full")}
	svc := newTestService(store)

	w, err := svc.Start(ctx, "guest:a")
	require.NoError(t, err)
	walkToPreferences(t, svc, "guest:a", w.ID)

	_, _, err = svc.Submit(ctx, "guest:a", w.ID)
	require.ErrorIs(t, err, ErrStorage)

	after, err := svc.Get(ctx, "guest:a", w.ID)
	require.NoError(t, err)
	assert.False(t, after.Submitted())
	assert.Equal(t, StepPreferences, after.Step)
}

func TestSubmitTwiceIsRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(results.NewMemoryStore())
	w, _ := svc.Start(ctx, "guest:a")
	walkToPreferences(t, svc, "guest:a", w.ID)
	_, _, err := svc.Submit(ctx, "guest:a", w.ID)
	require.NoError(t, err)

	_, _, err = svc.Submit(ctx, "guest:a", w.ID)
	require.ErrorIs(t, err, ErrSubmitted)
}

func TestSubmitBeforeLastStepIsRejected(t *testing.T) {
	ctx := context.Background()
	store := results.NewMemoryStore()
	svc := newTestService(store)
	w, _ := svc.Start(ctx, "guest:a")

	_, _, err := svc.Submit(ctx, "guest:a", w.ID)
	require.ErrorIs(t, err, ErrWrongStep)
	_, ok, _ := store.Load(ctx, "guest:a")
	assert.False(t, ok)
}

func TestWizardsAreScopedToVisitor(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(results.NewMemoryStore())
	w, _ := svc.Start(ctx, "guest:a")

	_, err := svc.Get(ctx, "guest:b", w.ID)
	require.ErrorIs(t, err, ErrNotFound)
	moved, err := svc.Next(ctx, "guest:b", w.ID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, moved.ID)

	own, err := svc.Get(ctx, "guest:a", w.ID)
	require.NoError(t, err)
	assert.Equal(t, StepBasics, own.Step)
}

// interleavingStore fires a Back on the same wizard while Save is in flight.
type interleavingStore struct {
	results.Store
	svc      *Service
	visitor  string
	wizardID string
	backErr  chan error
}

func (s *interleavingStore) Save(ctx context.Context, visitorID string, result recommendations.Result) error {
	if err := s.Store.Save(ctx, visitorID, result); err != nil {
		return err
	}
	go func() {
		_, err := s.svc.Back(context.Background(), s.visitor, s.wizardID)
		s.backErr <- err
	}()
	return nil
}

func TestSubmitIsNotInterleavedWithStepChanges(t *testing.T) {
	ctx := context.Background()
	store := &interleavingStore{Store: results.NewMemoryStore(), visitor: "guest:a", backErr: make(chan error, 1)}
	svc := newTestService(store)
	store.svc = svc

	w, err := svc.Start(ctx, "guest:a")
	require.NoError(t, err)
	walkToPreferences(t, svc, "guest:a", w.ID)
	store.wizardID = w.ID

	submitted, _, err := svc.Submit(ctx, "guest:a", w.ID)
	require.NoError(t, err)
	assert.True(t, submitted.Submitted())

	require.ErrorIs(t, <-store.backErr, ErrSubmitted)

	after, err := svc.Get(ctx, "guest:a", w.ID)
	require.NoError(t, err)
	assert.True(t, after.Submitted())
	assert.Equal(t, StepPreferences, after.Step)
	_, ok, err := store.Load(ctx, "guest:a")
	require.NoError(t, err)
	assert.True(t, ok)
}
