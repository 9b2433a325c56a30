package health

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Checker pings one dependency.
type Checker func(ctx context.Context) error

// Report is the health payload.
type Report struct {
	OK     bool              `json:"ok"`
	Store  string            `json:"store,omitempty"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Service runs the registered dependency checks.
type Service struct {
	mu      sync.RWMutex
	checks  map[string]Checker
	store   string
	timeout time.Duration
}

// NewService constructs a new health service reporting the given result store.
func NewService(store string) *Service {
	return &Service{
		checks:  make(map[string]Checker),
		store:   store,
		timeout: 2 * time.Second,
	}
}

// Register adds a named check; registering a name twice replaces it.
func (s *Service) Register(name string, check Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks[name] = check
}

// SetStore replaces the reported result store name.
func (s *Service) SetStore(store string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = store
}

// Status runs every check with a shared timeout.
func (s *Service) Status(ctx context.Context) Report {
	s.mu.RLock()
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	checks := make(map[string]Checker, len(s.checks))
	for k, v := range s.checks {
		checks[k] = v
	}
	store := s.store
	s.mu.RUnlock()
	sort.Strings(names)

	report := Report{OK: true, Store: store}
	if len(names) == 0 {
		return report
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report.Checks = make(map[string]string, len(names))
	for _, name := range names {
		if err := checks[name](ctx); err != nil {
			report.OK = false
			report.Checks[name] = err.Error()
			continue
		}
		report.Checks[name] = "ok"
	}
	return report
}
