package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one page session's cart: a store with its renderer subscribed.
type Session struct {
	ID       string
	Store    *Store
	Renderer *Renderer

	lastSeen time.Time
}

// Registry holds the volatile carts of open page sessions. Nothing in it
// outlives the process.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewRegistry creates a registry whose sessions expire after ttl without
// access. A ttl <= 0 disables expiry.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open starts an empty cart for a new page session.
func (r *Registry) Open() *Session {
	store := NewStore()
	renderer := NewRenderer()
	store.Subscribe(renderer)

	sess := &Session{
		ID:       uuid.NewString(),
		Store:    store,
		Renderer: renderer,
		lastSeen: r.now(),
	}
	r.mu.Lock()
	r.sessions[sess.ID] = sess
	r.mu.Unlock()
	return sess
}

// Get returns the session for id and marks it as recently used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	sess.lastSeen = r.now()
	return sess, nil
}

// Sweep drops sessions idle for longer than the ttl and reports how many
// were removed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, sess := range r.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
