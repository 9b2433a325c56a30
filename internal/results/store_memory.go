package results

import (
	"context"
	"sync"

	"aurelia-backend/internal/recommendations"
)

// MemoryStore keeps encoded payloads in process memory and is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Save(ctx context.Context, visitorID string, result recommendations.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if visitorID == "" {
		return ErrVisitorRequired
	}
	raw, err := Encode(result)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[visitorID] = raw
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, visitorID string) (recommendations.Result, bool, error) {
	if err := ctx.Err(); err != nil {
		return recommendations.Result{}, false, err
	}
	s.mu.RLock()
	raw, ok := s.slots[visitorID]
	s.mu.RUnlock()
	if !ok {
		return recommendations.Result{}, false, nil
	}
	result, ok := Decode(raw)
	return result, ok, nil
}

func (s *MemoryStore) Clear(ctx context.Context, visitorID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, visitorID)
	return nil
}

// PutRaw writes an already serialized payload, bypassing encoding.
func (s *MemoryStore) PutRaw(visitorID string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[visitorID] = append([]byte(nil), raw...)
}

var _ Store = (*MemoryStore)(nil)
