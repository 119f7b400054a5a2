// Package sparsecs implements a minimal sparse-set Entity Component System
// storage core.
//
// Features:
// - One homogeneous SparseSet pool per component type, O(1) add/remove/lookup.
// - Contiguous dense storage per pool for cache-friendly iteration.
// - Registry-owned entity lifecycle with LIFO ID recycling.
// - Lazy pool creation on first use of a component type.
// - No locking and no scheduling: systems and threading belong to the caller.
//
// The package is single-threaded by design. Concurrent access from multiple
// goroutines without external synchronization is undefined, as is mutating a
// pool while iterating its dense sequence.
package sparsecs

import "reflect"

// EntityID identifies an entity. IDs are densely packed in [0, MaxEntities)
// and carry no data of their own; an entity is nothing but its ID plus its
// membership in component pools. Destroyed IDs are recycled.
type EntityID uint

// Registry owns entity lifecycle and one component pool per distinct
// component type. Pools are created lazily on first use of a type and live
// for the registry's entire lifetime. All typed operations on a Registry are
// package-level generic functions (AddComponent, GetComponent, ...), since Go
// methods cannot introduce type parameters.
type Registry struct {
	maxEntities  int
	nextEntity   EntityID
	freeEntities []EntityID
	pools        map[reflect.Type]componentPool
}

// NewRegistry creates a Registry with a fixed entity capacity.
//
// Parameters:
//   - maxEntities: The maximum number of distinct entity IDs, fixed for the
//     registry's lifetime. Every lazily created pool is sized to it.
//
// Returns:
//   - The newly created Registry.
func NewRegistry(maxEntities int) *Registry {
	if maxEntities <= 0 {
		fail("sparsecs: registry capacity must be positive, got %d", maxEntities)
	}
	return &Registry{
		maxEntities: maxEntities,
		pools:       make(map[reflect.Type]componentPool, 16),
	}
}

// MaxEntities returns the entity capacity the registry was created with.
func (r *Registry) MaxEntities() int {
	return r.maxEntities
}

// CreateEntity returns a free entity ID: the most recently deleted ID if any
// have been recycled, otherwise the next sequential one. Exhausting the
// sequential ID space is a contract violation.
func (r *Registry) CreateEntity() EntityID {
	if n := len(r.freeEntities); n > 0 {
		id := r.freeEntities[n-1]
		r.freeEntities = r.freeEntities[:n-1]
		return id
	}
	if int(r.nextEntity)+1 >= r.maxEntities {
		fail("sparsecs: CreateEntity: entity capacity %d reached", r.maxEntities)
	}
	id := r.nextEntity
	r.nextEntity++
	return id
}

// DeleteEntity recycles an entity ID and removes the entity's data from every
// pool that holds it, through the pools' type-erased view. The sweep costs
// O(number of component types ever used), not O(components the entity has).
//
// DeleteEntity does not check that the entity is alive. Deleting the same ID
// twice pushes it onto the free list twice, after which CreateEntity will hand
// the ID out to two callers; the caller is responsible for deleting each
// entity exactly once.
func (r *Registry) DeleteEntity(e EntityID) {
	if int(e) >= r.maxEntities {
		fail("sparsecs: DeleteEntity: entity %d out of range (max %d)", e, r.maxEntities)
	}
	r.freeEntities = append(r.freeEntities, e)
	for _, p := range r.pools {
		p.RemoveEntity(e)
	}
}
