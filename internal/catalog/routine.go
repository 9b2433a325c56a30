package catalog

import (
	"context"
	"sync"
)

// RoutineRepo keeps each visitor's saved product names in insertion order.
type RoutineRepo interface {
	Add(ctx context.Context, visitorID, name string) (already bool, err error)
	Remove(ctx context.Context, visitorID, name string) error
	Clear(ctx context.Context, visitorID string) error
	List(ctx context.Context, visitorID string) ([]string, error)
}

// MemoryRoutineRepo stores routines in memory and is safe for concurrent use.
type MemoryRoutineRepo struct {
	mu        sync.RWMutex
	byVisitor map[string][]string
}

func NewMemoryRoutineRepo() *MemoryRoutineRepo {
	return &MemoryRoutineRepo{byVisitor: make(map[string][]string)}
}

func (r *MemoryRoutineRepo) Add(ctx context.Context, visitorID, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byVisitor[visitorID] {
		if existing == name {
			return true, nil
		}
	}
	r.byVisitor[visitorID] = append(r.byVisitor[visitorID], name)
	return false, nil
}

// Remove deletes name from the routine; removing a missing name is a no-op.
func (r *MemoryRoutineRepo) Remove(ctx context.Context, visitorID, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.byVisitor[visitorID]
	kept := make([]string, 0, len(items))
	for _, existing := range items {
		if existing != name {
			kept = append(kept, existing)
		}
	}
	r.byVisitor[visitorID] = kept
	return nil
}

func (r *MemoryRoutineRepo) Clear(ctx context.Context, visitorID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byVisitor, visitorID)
	return nil
}

func (r *MemoryRoutineRepo) List(ctx context.Context, visitorID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.byVisitor[visitorID]...), nil
}

var _ RoutineRepo = (*MemoryRoutineRepo)(nil)
