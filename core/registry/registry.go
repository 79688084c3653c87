package registry

import "sync"

// Registry is a thread-safe key-value store with per-key locking. Extension
// registries (cmd, cron, api) live here so init()-time registration and
// startup-time application share one mechanism.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is the process-wide registry instance.
var GlobalRegistry = &Registry{
	values: make(map[string]interface{}),
	locked: make(map[string]bool),
}

// GetGlobal returns the value for key, if present.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// SetGlobal stores a value for key. Panics if the key is locked.
func (r *Registry) SetGlobal(key string, v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		panic("core/registry: set on locked key " + key)
	}
	r.values[key] = v
}

// Lock freezes a key. Further SetGlobal calls for it panic.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

// IsLocked reports whether a key is frozen.
func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting unfreezes a key (for tests only).
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = false
}
