package sparsecs

// componentPool is the registry's type-erased view of a pool. It is the
// complete capability set a type-agnostic sweep needs: when DeleteEntity
// purges an entity it must touch every pool without knowing any pool's value
// type. Typed access goes through the registry's pool map instead, which
// recovers the concrete *SparseSet[T] by type assertion.
type componentPool interface {
	HasEntity(e EntityID) bool
	RemoveEntity(e EntityID) bool
}

// HasEntity implements the registry's type-erased pool view; it is Has.
func (s *SparseSet[T]) HasEntity(e EntityID) bool {
	return s.Has(e)
}

// RemoveEntity implements the registry's type-erased pool view; it is Remove.
func (s *SparseSet[T]) RemoveEntity(e EntityID) bool {
	return s.Remove(e)
}
