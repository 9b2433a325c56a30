package questionnaire

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aurelia-backend/internal/profile"
	"aurelia-backend/internal/recommendations"
	"aurelia-backend/internal/results"
	"aurelia-backend/internal/shared/metrics"
	"aurelia-backend/internal/shared/telemetry"
)

// Service contains business logic for the questionnaire.
type Service struct {
	Repo  Repo
	Store results.Store
	Now   func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, store results.Store) *Service {
	return &Service{Repo: repo, Store: store}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Start opens a new wizard for the visitor.
func (s *Service) Start(ctx context.Context, visitorID string) (Wizard, error) {
	if visitorID == "" {
		return Wizard{}, errors.New("visitorID is required")
	}
	wizard := NewWizard(uuid.NewString(), visitorID, s.now())
	if err := s.Repo.Create(ctx, wizard); err != nil {
		return Wizard{}, err
	}
	metrics.IncQuestionnaireStarted()
	telemetry.Info("questionnaire.started", map[string]any{"wizard_id": wizard.ID, "visitor_id": visitorID})
	return wizard, nil
}

// Get returns the visitor's wizard. Wizards owned by someone else are reported as not found.
func (s *Service) Get(ctx context.Context, visitorID, id string) (Wizard, error) {
	wizard, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Wizard{}, err
	}
	if wizard.VisitorID != visitorID {
		return Wizard{}, ErrNotFound
	}
	return wizard, nil
}

func (s *Service) UpdateAnswers(ctx context.Context, visitorID, id string, patch profile.AnswerPatch) (Wizard, error) {
	return s.update(ctx, visitorID, id, func(w *Wizard) error {
		return w.Apply(patch)
	})
}

// ToggleConcern flips a concern and reports whether it is now selected.
func (s *Service) ToggleConcern(ctx context.Context, visitorID, id, tag string) (Wizard, bool, error) {
	var selected bool
	wizard, err := s.update(ctx, visitorID, id, func(w *Wizard) error {
		var err error
		selected, err = w.ToggleConcern(tag)
		return err
	})
	return wizard, selected, err
}

func (s *Service) Next(ctx context.Context, visitorID, id string) (Wizard, error) {
	return s.update(ctx, visitorID, id, func(w *Wizard) error {
		return w.Next()
	})
}

func (s *Service) Back(ctx context.Context, visitorID, id string) (Wizard, error) {
	return s.update(ctx, visitorID, id, func(w *Wizard) error {
		return w.Back()
	})
}

// Submit derives the recommendation, saves it to the visitor's slot and
// closes the wizard as one repo update, so no other step change can land in
// between. When the save fails the wizard stays open on its last step.
func (s *Service) Submit(ctx context.Context, visitorID, id string) (Wizard, recommendations.Result, error) {
	var result recommendations.Result
	submittedAt := s.now()
	wizard, err := s.update(ctx, visitorID, id, func(w *Wizard) error {
		if err := w.CanSubmit(); err != nil {
			return err
		}
		derived := recommendations.Derive(w.Answers)
		if err := s.Store.Save(ctx, visitorID, derived); err != nil {
			metrics.IncResultStoreError()
			telemetry.Error("questionnaire.save_failed", map[string]any{
				"wizard_id":  id,
				"visitor_id": visitorID,
				"error":      err,
			})
			return fmt.Errorf("%w: %v", ErrStorage, err)
		}
		result = derived
		return w.MarkSubmitted(submittedAt)
	})
	if err != nil {
		return wizard, recommendations.Result{}, err
	}

	metrics.IncQuestionnaireSubmitted()
	metrics.ObserveCompletionSeconds(submittedAt.Sub(wizard.CreatedAt).Seconds())
	telemetry.Info("questionnaire.submitted", map[string]any{
		"wizard_id":  id,
		"visitor_id": visitorID,
		"skin_type":  result.SkinType,
		"budget":     result.BudgetLabel,
	})
	return wizard, result, nil
}

func (s *Service) update(ctx context.Context, visitorID, id string, fn func(*Wizard) error) (Wizard, error) {
	wizard, err := s.Repo.Update(ctx, id, func(w *Wizard) error {
		if w.VisitorID != visitorID {
			return ErrNotFound
		}
		return fn(w)
	})
	if errors.Is(err, ErrNotFound) {
		return Wizard{}, err
	}
	return wizard, err
}
