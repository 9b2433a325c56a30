package recommendations

import (
	"strings"

	"aurelia-backend/internal/profile"
)

// Derive builds the recommendation for a completed answer set. It never fails:
// unanswered fields fall back to the defaults.
func Derive(answers profile.Answers) Result {
	return Result{
		SkinType:            orDefault(answers.SkinType, DefaultSkinType),
		ConcernsSummary:     orDefault(strings.Join(answers.Concerns, ", "), DefaultConcerns),
		BudgetLabel:         orDefault(answers.Budget, DefaultBudget),
		MorningRoutine:      clone(morningRoutine),
		NightRoutine:        clone(nightRoutine),
		RecommendedProducts: clone(products),
	}
}

// Defaults returns the payload derived from an empty answer set.
func Defaults() Result {
	return Derive(profile.Answers{})
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func clone(items []string) []string {
	return append(make([]string, 0, len(items)), items...)
}
