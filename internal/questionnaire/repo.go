package questionnaire

import (
	"context"
	"time"
)

// Repo defines persistence operations for wizards.
type Repo interface {
	Create(ctx context.Context, wizard Wizard) error
	GetByID(ctx context.Context, id string) (Wizard, error)
	// Update applies fn to the stored wizard atomically. The wizard is only
	// written back when fn returns nil.
	Update(ctx context.Context, id string, fn func(*Wizard) error) (Wizard, error)
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}
