package filter

import (
	"fmt"
	"sync"

	"github.com/arloliu/scanfilter/errs"
	"github.com/arloliu/scanfilter/internal/hash"
	"github.com/arloliu/scanfilter/legacy"
)

// Registry is the set of filter types a peer is known to decode, keyed by
// the 64-bit hash of their type tags.
//
// Registering two different names that hash to the same ID is rejected, so a
// lookup by ID always identifies exactly one name. A Registry is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	names  map[uint64]string
	hashFn func([]byte) uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names:  make(map[uint64]string),
		hashFn: hash.ID,
	}
}

// DefaultRegistry creates a registry holding every filter type in this package.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	if _, err := r.Register(columnPaginationName); err != nil {
		panic(err) // constant names; cannot fail
	}

	return r
}

// Register adds a filter type tag and returns its ID.
// Registering the same name again is a no-op.
func (r *Registry) Register(name []byte) (uint64, error) {
	if len(name) == 0 || len(name) > legacy.MaxTypeTagLength {
		return 0, fmt.Errorf("%w: length %d not in [1, %d]", errs.ErrInvalidFilterName, len(name), legacy.MaxTypeTagLength)
	}

	id := r.hashFn(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.names[id]; ok {
		if existing != string(name) {
			return 0, fmt.Errorf("%w: %q and %q share ID %#016x", errs.ErrTypeIDCollision, existing, name, id)
		}

		return id, nil
	}
	r.names[id] = string(name)

	return id, nil
}

// Lookup returns the type tag registered under id.
func (r *Registry) Lookup(id uint64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.names[id]

	return name, ok
}

// Supports reports whether f's type tag is registered.
func (r *Registry) Supports(f Filter) bool {
	name := f.Name()
	existing, ok := r.Lookup(r.hashFn(name))

	return ok && existing == string(name)
}

// Len returns the number of registered filter types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.names)
}
