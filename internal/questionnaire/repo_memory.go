package questionnaire

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores wizards in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Wizard
	now  func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]Wizard),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepo) Create(ctx context.Context, wizard Wizard) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[wizard.ID] = wizard.Clone()
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Wizard, error) {
	if err := ctx.Err(); err != nil {
		return Wizard{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	wizard, ok := r.byID[id]
	if !ok {
		return Wizard{}, ErrNotFound
	}
	return wizard.Clone(), nil
}

func (r *MemoryRepo) Update(ctx context.Context, id string, fn func(*Wizard) error) (Wizard, error) {
	if err := ctx.Err(); err != nil {
		return Wizard{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return Wizard{}, ErrNotFound
	}
	working := stored.Clone()
	if err := fn(&working); err != nil {
		return stored.Clone(), err
	}
	working.UpdatedAt = r.now()
	r.byID[id] = working
	return working.Clone(), nil
}

// DeleteIdle removes wizards not touched since before and returns how many were removed.
func (r *MemoryRepo) DeleteIdle(ctx context.Context, before time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, wizard := range r.byID {
		if wizard.UpdatedAt.Before(before) {
			delete(r.byID, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored wizards.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

var _ Repo = (*MemoryRepo)(nil)
