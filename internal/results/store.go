package results

import (
	"context"
	"errors"

	"aurelia-backend/internal/recommendations"
)

// SlotName is the well-known name of the slot holding a visitor's latest result.
const SlotName = "aureliaResult"

var ErrVisitorRequired = errors.New("visitor id is required")

// Store keeps at most one recommendation per visitor. Load reports ok=false when
// the slot was never written or holds a payload that cannot be decoded; errors
// are reserved for backend failures.
type Store interface {
	Save(ctx context.Context, visitorID string, result recommendations.Result) error
	Load(ctx context.Context, visitorID string) (recommendations.Result, bool, error)
	Clear(ctx context.Context, visitorID string) error
}
