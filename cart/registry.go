package cart

import "sync"

const keyPrefix = "cart:"

// Registry hands out one Manager per user, hydrating it from the store on
// first use. Snapshot keys are namespaced per user so carts never collide.
type Registry struct {
	store SnapshotStore

	mu       sync.Mutex
	managers map[string]*Manager
}

func NewRegistry(store SnapshotStore) *Registry {
	return &Registry{store: store, managers: make(map[string]*Manager)}
}

// ForUser returns the user's cart manager, creating and hydrating it if this
// is the first access in the process lifetime.
func (r *Registry) ForUser(userID string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.managers[userID]; ok {
		return m
	}
	m := NewManager(r.store, keyPrefix+userID)
	r.managers[userID] = m
	return m
}

// Reset clears the user's cart and removes its persisted snapshot. Called on
// logout, before the session is considered ended.
func (r *Registry) Reset(userID string) {
	r.ForUser(userID).ResetCart()
}

// Flush waits for every manager's in-flight snapshot writes. Used on
// shutdown.
func (r *Registry) Flush() {
	r.mu.Lock()
	managers := make([]*Manager, 0, len(r.managers))
	for _, m := range r.managers {
		managers = append(managers, m)
	}
	r.mu.Unlock()

	for _, m := range managers {
		m.Flush()
	}
}
