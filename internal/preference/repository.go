package preference

import (
	"context"
	"strconv"
	"sync"
)

// InMemoryStore keeps preferences in process memory. It is the default
// backend and the fallback when a configured backend cannot be opened.
type InMemoryStore struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{values: make(map[string]map[string]string)}
}

func (s *InMemoryStore) Get(_ context.Context, visitorID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[visitorID][key]
	return v, ok, nil
}

func (s *InMemoryStore) GetMany(_ context.Context, visitorID string, keys []string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := s.values[visitorID][k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (s *InMemoryStore) Set(_ context.Context, visitorID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.values[visitorID]
	if !ok {
		m = make(map[string]string)
		s.values[visitorID] = m
	}
	m[key] = value
	return nil
}

func (s *InMemoryStore) Increment(_ context.Context, visitorID, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.values[visitorID]
	if !ok {
		m = make(map[string]string)
		s.values[visitorID] = m
	}
	n := decodeCounter(m[key]) + 1
	m[key] = strconv.Itoa(n)
	return n, nil
}
