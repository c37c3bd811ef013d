package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore keeps projects in process memory. It is the default when no
// Redis address is configured and the store tests run against it.
type MemoryStore struct {
	mu      sync.RWMutex
	byToken map[string]*Project
	bySlug  map[string]*Project
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byToken: make(map[string]*Project),
		bySlug:  make(map[string]*Project),
	}
}

func (s *MemoryStore) Create(ctx context.Context, project *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := cloneProject(project)
	s.byToken[project.EditToken] = cp
	s.bySlug[project.ShareSlug] = cp
	return nil
}

func (s *MemoryStore) GetByEditToken(ctx context.Context, token string) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(s.byToken[token])
}

func (s *MemoryStore) GetByShareSlug(ctx context.Context, slug string) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(s.bySlug[slug])
}

// lookup hands out a deep copy so callers can mutate the spec and SEO
// payload they received without corrupting the stored record.
func (s *MemoryStore) lookup(project *Project) (*Project, error) {
	if project == nil {
		return nil, ErrNotFound
	}
	cp := cloneProject(project)
	if cp.Expired(time.Now()) {
		return cp, ErrExpired
	}
	return cp, nil
}

func (s *MemoryStore) UpdateSite(ctx context.Context, project *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.byToken[project.EditToken]
	if !ok {
		return ErrNotFound
	}
	cp := cloneProject(project)
	existing.SiteSpec = cp.SiteSpec
	existing.Seo = cp.Seo
	existing.Seed = cp.Seed
	existing.Input = cp.Input
	existing.Status = cp.Status
	existing.UpdatedAt = cp.UpdatedAt
	return nil
}

// cloneProject deep-copies a record through its wire form, detaching the
// nested spec, SEO, and input slices from the original.
func cloneProject(project *Project) *Project {
	raw, err := json.Marshal(project)
	if err != nil {
		cp := *project
		return &cp
	}
	out := &Project{}
	if err := json.Unmarshal(raw, out); err != nil {
		cp := *project
		return &cp
	}
	return out
}
