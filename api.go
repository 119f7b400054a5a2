package sparsecs

import "reflect"

// getOrCreatePool returns the registry's pool for T, creating it with the
// registry's capacity on first use of the type.
func getOrCreatePool[T any](r *Registry) *SparseSet[T] {
	key := reflect.TypeFor[T]()
	if p, ok := r.pools[key]; ok {
		return p.(*SparseSet[T])
	}
	s := NewSparseSet[T](r.maxEntities)
	r.pools[key] = s
	return s
}

// tryGetPool returns the registry's pool for T, or nil if no operation has
// referenced T yet.
func tryGetPool[T any](r *Registry) *SparseSet[T] {
	if p, ok := r.pools[reflect.TypeFor[T]()]; ok {
		return p.(*SparseSet[T])
	}
	return nil
}

func (r *Registry) checkRange(op string, e EntityID) {
	if int(e) >= r.maxEntities {
		fail("sparsecs: %s: entity %d out of range (max %d)", op, e, r.maxEntities)
	}
}

// AddComponent attaches a component of type T to an entity and returns a
// pointer to the stored value. The pool for T is created on first use.
//
// If the entity already has a T, AddComponent returns the existing value
// untouched and discards the argument; use the returned pointer to mutate
// component data in place.
//
// Parameters:
//   - r: The Registry owning the entity.
//   - e: The entity to attach the component to. Must be below the registry's
//     capacity.
//   - value: The component data stored when the entity has no T yet.
//
// Returns:
//   - A pointer to the entity's stored T.
func AddComponent[T any](r *Registry, e EntityID, value T) *T {
	r.checkRange("AddComponent", e)
	return getOrCreatePool[T](r).Add(e, value)
}

// GetComponent returns a pointer to the entity's component of type T.
// It is a contract violation if no pool for T exists or the entity has no T;
// this path deliberately carries no recoverable miss, callers on uncertain
// paths use HasComponent first.
func GetComponent[T any](r *Registry, e EntityID) *T {
	r.checkRange("GetComponent", e)
	pool := tryGetPool[T](r)
	if pool == nil {
		fail("sparsecs: GetComponent: component type %v has no pool", reflect.TypeFor[T]())
	}
	if !pool.Has(e) {
		fail("sparsecs: GetComponent: entity %d has no %v", e, reflect.TypeFor[T]())
	}
	return pool.Get(e)
}

// RemoveComponent detaches the entity's component of type T. It returns
// false when no pool for T exists yet or the entity has none.
func RemoveComponent[T any](r *Registry, e EntityID) bool {
	r.checkRange("RemoveComponent", e)
	if pool := tryGetPool[T](r); pool != nil {
		return pool.Remove(e)
	}
	return false
}

// HasComponent reports whether the entity has a component of type T. It
// returns false when no pool for T exists yet.
func HasComponent[T any](r *Registry, e EntityID) bool {
	r.checkRange("HasComponent", e)
	if pool := tryGetPool[T](r); pool != nil {
		return pool.Has(e)
	}
	return false
}

// Iterate exposes the T pool for direct dense iteration, creating it if
// absent. This is the hook per-frame update logic is built on: the caller
// ranges over the pool's All sequence and applies its own systems, which are
// out of this package's scope.
func Iterate[T any](r *Registry) *SparseSet[T] {
	return getOrCreatePool[T](r)
}
