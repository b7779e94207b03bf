package engine

import "github.com/lixenwraith/shoot/core"

type slotState uint8

const (
	slotFree slotState = iota
	slotReserved
	slotLive
)

type slot[T any] struct {
	gen   uint32
	state slotState
	val   T
}

// Store is a slot map with generational handles
// Reserve hands out a handle for a staged value without making it live, so staging
// lists hold handles and commit is O(1) per entry. Freed slots bump their generation,
// which turns every outstanding handle to that slot stale.
// Not safe for concurrent use; the world is driven by a single caller.
type Store[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// NewStore creates a store with capacity preallocated
func NewStore[T any](capacity int) *Store[T] {
	return &Store[T]{
		slots: make([]slot[T], 0, capacity),
	}
}

// Reserve stores val in a free slot in reserved state and returns its handle
func (s *Store[T]) Reserve(val T) core.Entity {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot[T]{gen: 1})
	}
	sl := &s.slots[idx]
	sl.state = slotReserved
	sl.val = val
	return core.Entity{Index: idx, Gen: sl.gen}
}

// Activate promotes a reserved handle into the live set
// Returns false for stale, free or already live handles
func (s *Store[T]) Activate(e core.Entity) bool {
	sl := s.slot(e)
	if sl == nil || sl.state != slotReserved {
		return false
	}
	sl.state = slotLive
	s.live++
	return true
}

// Remove deletes a live entity; absent, stale or reserved handles are a no-op
func (s *Store[T]) Remove(e core.Entity) bool {
	sl := s.slot(e)
	if sl == nil || sl.state != slotLive {
		return false
	}
	s.release(e.Index)
	s.live--
	return true
}

// Cancel releases a reserved handle that was never activated
func (s *Store[T]) Cancel(e core.Entity) bool {
	sl := s.slot(e)
	if sl == nil || sl.state != slotReserved {
		return false
	}
	s.release(e.Index)
	return true
}

// Get returns the value of a live entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	sl := s.slot(e)
	if sl == nil || sl.state != slotLive {
		var zero T
		return zero, false
	}
	return sl.val, true
}

// Staged returns the value behind a reserved handle that has not been committed
func (s *Store[T]) Staged(e core.Entity) (T, bool) {
	sl := s.slot(e)
	if sl == nil || sl.state != slotReserved {
		var zero T
		return zero, false
	}
	return sl.val, true
}

// Contains reports whether e is live
func (s *Store[T]) Contains(e core.Entity) bool {
	sl := s.slot(e)
	return sl != nil && sl.state == slotLive
}

// Len returns the live count
func (s *Store[T]) Len() int {
	return s.live
}

// Each visits live entities in slot order until fn returns false
// The slot range is fixed on entry: values reserved during iteration are not visited
func (s *Store[T]) Each(fn func(e core.Entity, val T) bool) {
	n := len(s.slots)
	for i := 0; i < n; i++ {
		sl := &s.slots[i]
		if sl.state != slotLive {
			continue
		}
		if !fn(core.Entity{Index: uint32(i), Gen: sl.gen}, sl.val) {
			return
		}
	}
}

// Entities returns a copy of live handles in slot order
func (s *Store[T]) Entities() []core.Entity {
	result := make([]core.Entity, 0, s.live)
	s.Each(func(e core.Entity, _ T) bool {
		result = append(result, e)
		return true
	})
	return result
}

// Clear frees every slot, invalidating all handles
func (s *Store[T]) Clear() {
	for i := range s.slots {
		if s.slots[i].state != slotFree {
			s.release(uint32(i))
		}
	}
	s.live = 0
}

func (s *Store[T]) slot(e core.Entity) *slot[T] {
	if int(e.Index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[e.Index]
	if sl.gen != e.Gen {
		return nil
	}
	return sl
}

func (s *Store[T]) release(idx uint32) {
	sl := &s.slots[idx]
	var zero T
	sl.val = zero
	sl.state = slotFree
	sl.gen++
	if sl.gen == 0 {
		sl.gen = 1 // Zero is reserved for core.NoEntity
	}
	s.free = append(s.free, idx)
}
