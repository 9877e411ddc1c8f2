// Package session tracks per-session conversational memory.
package session

import (
	"sync"

	"github.com/pluang/hrbuddy/internal/domain"
)

// Store is the session-memory abstraction the bot depends on. The in-memory
// Registry below is the only implementation today; an external cache could
// replace it without touching the routing logic.
type Store interface {
	// Get returns a copy of the session's memory, creating an empty
	// memory for unknown sessions.
	Get(sessionID string) domain.SessionMemory

	// Update applies fn to the session's memory under the registry lock.
	Update(sessionID string, fn func(*domain.SessionMemory))
}

// Registry is a process-lifetime, in-memory session store. Memories are
// created lazily and never evicted; everything is lost on restart.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.SessionMemory
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*domain.SessionMemory)}
}

// Get returns a copy of the session's memory, creating it if absent.
func (r *Registry) Get(sessionID string) domain.SessionMemory {
	r.mu.RLock()
	mem, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if ok {
		return *mem
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if mem, ok := r.sessions[sessionID]; ok {
		return *mem
	}
	r.sessions[sessionID] = &domain.SessionMemory{}
	return domain.SessionMemory{}
}

// Update applies fn to the session's memory, creating it if absent.
func (r *Registry) Update(sessionID string, fn func(*domain.SessionMemory)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	mem, ok := r.sessions[sessionID]
	if !ok {
		mem = &domain.SessionMemory{}
		r.sessions[sessionID] = mem
	}
	fn(mem)
}

// Len returns the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
