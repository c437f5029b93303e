package entity

// Arena is a dense slice of entities. Removal swaps the last element into
// the freed slot, so order is not preserved.
type Arena[T any] struct {
	items []T
}

// Add appends v.
func (a *Arena[T]) Add(v T) {
	a.items = append(a.items, v)
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// At returns a pointer to the i-th entity. The pointer is invalidated by
// the next Add or removal.
func (a *Arena[T]) At(i int) *T {
	return &a.items[i]
}

// Items exposes the live entities for read-only iteration.
func (a *Arena[T]) Items() []T {
	return a.items
}

// SwapRemove removes the i-th entity in O(1).
func (a *Arena[T]) SwapRemove(i int) {
	last := len(a.items) - 1
	a.items[i] = a.items[last]
	var zero T
	a.items[last] = zero
	a.items = a.items[:last]
}

// Retain keeps the entities for which keep returns true. keep may mutate
// the entity it is given.
func (a *Arena[T]) Retain(keep func(*T) bool) {
	for i := 0; i < len(a.items); {
		if keep(&a.items[i]) {
			i++
			continue
		}
		a.SwapRemove(i)
	}
}

// Clear removes every entity, keeping capacity.
func (a *Arena[T]) Clear() {
	clear(a.items)
	a.items = a.items[:0]
}

// Clone returns an independent copy of the arena.
func (a *Arena[T]) Clone() Arena[T] {
	if a.items == nil {
		return Arena[T]{}
	}
	return Arena[T]{items: append(make([]T, 0, len(a.items)), a.items...)}
}
