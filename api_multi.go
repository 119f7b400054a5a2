package sparsecs

// N-arity variants of GetComponent and HasComponent. Go has no variadic type
// parameters, so like the filter and builder families elsewhere in this
// author's ECS work these are written out per arity.

// GetComponents2 fetches the entity's T1 and T2 components, in that order.
// Each fetch obeys the GetComponent contract.
func GetComponents2[T1, T2 any](r *Registry, e EntityID) (*T1, *T2) {
	return GetComponent[T1](r, e), GetComponent[T2](r, e)
}

// GetComponents3 fetches the entity's T1, T2 and T3 components, in that
// order. Each fetch obeys the GetComponent contract.
func GetComponents3[T1, T2, T3 any](r *Registry, e EntityID) (*T1, *T2, *T3) {
	return GetComponent[T1](r, e), GetComponent[T2](r, e), GetComponent[T3](r, e)
}

// GetComponents4 fetches the entity's T1..T4 components, in that order.
// Each fetch obeys the GetComponent contract.
func GetComponents4[T1, T2, T3, T4 any](r *Registry, e EntityID) (*T1, *T2, *T3, *T4) {
	return GetComponent[T1](r, e), GetComponent[T2](r, e),
		GetComponent[T3](r, e), GetComponent[T4](r, e)
}

// HasComponents2 reports whether the entity has both a T1 and a T2,
// short-circuiting on the first miss.
func HasComponents2[T1, T2 any](r *Registry, e EntityID) bool {
	return HasComponent[T1](r, e) && HasComponent[T2](r, e)
}

// HasComponents3 reports whether the entity has a T1, T2 and T3,
// short-circuiting on the first miss.
func HasComponents3[T1, T2, T3 any](r *Registry, e EntityID) bool {
	return HasComponent[T1](r, e) && HasComponent[T2](r, e) && HasComponent[T3](r, e)
}

// HasComponents4 reports whether the entity has a T1..T4, short-circuiting
// on the first miss.
func HasComponents4[T1, T2, T3, T4 any](r *Registry, e EntityID) bool {
	return HasComponent[T1](r, e) && HasComponent[T2](r, e) &&
		HasComponent[T3](r, e) && HasComponent[T4](r, e)
}
