package results

import (
	"context"

	"aurelia-backend/internal/recommendations"
	"aurelia-backend/internal/shared/metrics"
	"aurelia-backend/internal/shared/telemetry"
)

// DefaultStartPath opens a new questionnaire and only accepts POST; the HTML
// page offers it as a form.
const (
	FallbackMessage   = "No results found. Please complete the skin analysis first."
	DefaultStartPath  = "/api/v1/questionnaire"
	DefaultBrowsePath = "/api/v1/products"
)

// Tile is one labelled summary value.
type Tile struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Step is one numbered routine entry.
type Step struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// View is the presentation of a visitor's stored recommendation, or the
// fallback state when nothing usable is stored.
type View struct {
	Found          bool     `json:"found"`
	Message        string   `json:"message,omitempty"`
	StartPath      string   `json:"startPath,omitempty"`
	Summary        []Tile   `json:"summary,omitempty"`
	MorningRoutine []Step   `json:"morningRoutine,omitempty"`
	NightRoutine   []Step   `json:"nightRoutine,omitempty"`
	Products       []string `json:"products,omitempty"`
	BrowsePath     string   `json:"browsePath,omitempty"`
}

// Renderer reads the visitor's slot once per call and builds a View.
type Renderer struct {
	Store      Store
	StartPath  string
	BrowsePath string
}

func NewRenderer(store Store) *Renderer {
	return &Renderer{Store: store, StartPath: DefaultStartPath, BrowsePath: DefaultBrowsePath}
}

// Render never fails: a store error is logged and shown as the fallback view.
func (r *Renderer) Render(ctx context.Context, visitorID string) View {
	result, ok, err := r.Store.Load(ctx, visitorID)
	if err != nil {
		metrics.IncResultStoreError()
		telemetry.Error("results.load_failed", map[string]any{"visitor_id": visitorID, "error": err})
		ok = false
	}
	if !ok {
		metrics.IncResultsFallback()
		return r.fallback()
	}
	metrics.IncResultsRendered()
	return r.build(result)
}

func (r *Renderer) fallback() View {
	return View{
		Found:     false,
		Message:   FallbackMessage,
		StartPath: r.StartPath,
	}
}

func (r *Renderer) build(result recommendations.Result) View {
	products := make([]string, len(result.RecommendedProducts))
	copy(products, result.RecommendedProducts)
	return View{
		Found: true,
		Summary: []Tile{
			{Label: "Skin Type", Value: result.SkinType},
			{Label: "Concerns", Value: result.ConcernsSummary},
			{Label: "Budget", Value: result.BudgetLabel},
		},
		MorningRoutine: numbered(result.MorningRoutine),
		NightRoutine:   numbered(result.NightRoutine),
		Products:       products,
		BrowsePath:     r.BrowsePath,
	}
}

func numbered(names []string) []Step {
	steps := make([]Step, 0, len(names))
	for i, name := range names {
		steps = append(steps, Step{Number: i + 1, Name: name})
	}
	return steps
}
