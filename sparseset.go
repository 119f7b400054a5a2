package sparsecs

import "iter"

// SparseSet is the per-component-type storage engine: a sparse index array
// keyed by entity ID over a contiguous dense array of (entity, value) pairs.
// Membership, insertion, removal and lookup are O(1); iteration touches only
// the dense array.
//
// The sparse slot of an entity without a component holds the sentinel value
// maxEntities-1. That value doubles as a legitimate entity ID, so the ID
// maxEntities-1 is ambiguous to a pool whose dense array grows that far; the
// Registry never mints that ID, which keeps the ambiguity unreachable unless
// hand-built IDs are fed straight into a pool.
type SparseSet[T any] struct {
	maxEntities int
	sparse      []EntityID // entity ID -> dense index, or sentinel
	entities    []EntityID // dense, parallel to data
	data        []T
}

// NewSparseSet creates a pool for values of type T covering entity IDs in
// [0, maxEntities).
func NewSparseSet[T any](maxEntities int) *SparseSet[T] {
	if maxEntities <= 0 {
		fail("sparsecs: pool capacity must be positive, got %d", maxEntities)
	}
	s := &SparseSet[T]{
		maxEntities: maxEntities,
		sparse:      make([]EntityID, maxEntities),
	}
	sentinel := EntityID(maxEntities - 1)
	for i := range s.sparse {
		s.sparse[i] = sentinel
	}
	return s
}

func (s *SparseSet[T]) sentinel() EntityID {
	return EntityID(s.maxEntities - 1)
}

func (s *SparseSet[T]) checkRange(e EntityID) {
	if int(e) >= s.maxEntities {
		fail("sparsecs: entity %d out of range (max %d)", e, s.maxEntities)
	}
}

// Has reports whether the entity owns a value in this pool.
// The entity ID must be below the pool's capacity.
func (s *SparseSet[T]) Has(e EntityID) bool {
	s.checkRange(e)
	return s.sparse[e] != s.sentinel()
}

// Add stores value for the entity and returns a pointer to the stored copy.
// If the entity already owns a value, Add is a no-op that returns the
// existing value; the argument is discarded, never overwritten onto it.
// The entity ID must be below the pool's capacity.
func (s *SparseSet[T]) Add(e EntityID, value T) *T {
	s.checkRange(e)
	if s.Has(e) {
		return &s.data[s.sparse[e]]
	}
	s.entities = append(s.entities, e)
	s.data = append(s.data, value)
	s.sparse[e] = EntityID(len(s.data) - 1)
	return &s.data[len(s.data)-1]
}

// Get returns a pointer to the entity's stored value. Calling Get for an
// entity that has no value in this pool is a contract violation; callers on
// uncertain paths check Has first.
func (s *SparseSet[T]) Get(e EntityID) *T {
	s.checkRange(e)
	if !s.Has(e) {
		fail("sparsecs: Get: entity %d has no component in this pool", e)
	}
	return &s.data[s.sparse[e]]
}

// Remove discards the entity's value. It returns false without effect when
// the entity owns nothing here. Removal swaps the last dense entry into the
// vacated slot and shrinks the dense array, so it reorders the tail entry;
// no other entry moves. The entity ID must be below the pool's capacity.
func (s *SparseSet[T]) Remove(e EntityID) bool {
	s.checkRange(e)
	if !s.Has(e) {
		return false
	}
	idx := s.sparse[e]
	last := len(s.entities) - 1
	moved := s.entities[last]
	s.entities[idx] = moved
	s.data[idx] = s.data[last]
	s.sparse[moved] = idx
	s.entities = s.entities[:last]
	s.data = s.data[:last]
	s.sparse[e] = s.sentinel()
	return true
}

// Len returns the number of entities currently stored in the pool.
func (s *SparseSet[T]) Len() int {
	return len(s.entities)
}

// Entities returns the dense entity ID slice. It is a view, not a copy: it
// stays valid only until the next Add or Remove on this pool.
func (s *SparseSet[T]) Entities() []EntityID {
	return s.entities
}

// All returns an iterator over the dense (entity, value) pairs, in dense
// order. Each call yields a fresh sequence reflecting the pool's current
// contents. Dense order is not stable across removals: swap-removal moves
// the tail entry.
//
// Adding to or removing from this pool while a sequence from All is being
// consumed is undefined. That rule is documented, not enforced.
func (s *SparseSet[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := range s.entities {
			if !yield(s.entities[i], &s.data[i]) {
				return
			}
		}
	}
}
