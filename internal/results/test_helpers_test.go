package results

import (
	"context"
	"errors"

	"aurelia-backend/internal/profile"
	"aurelia-backend/internal/recommendations"
)

func oilyAnswers() profile.Answers {
	return profile.Answers{
		SkinType: "Oily",
		Concerns: []string{"Acne", "Oiliness"},
		Budget:   "Low (under ₹500)",
	}
}

var errBackendDown = errors.New("backend down")

// failingStore returns errBackendDown from every operation.
type failingStore struct{}

func (failingStore) Save(context.Context, string, recommendations.Result) error {
	return errBackendDown
}

func (failingStore) Load(context.Context, string) (recommendations.Result, bool, error) {
	return recommendations.Result{}, false, errBackendDown
}

func (failingStore) Clear(context.Context, string) error {
	return errBackendDown
}
