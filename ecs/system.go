package ecs

// System declares an inclusion mask and two exclusion masks and
// incrementally maintains a SparseSet of the entities currently matching
// them. It subscribes to its World's add/remove listeners at construction
// and updates its matching set as components are attached or detached; it
// never scans the whole world on its own.
type System struct {
	world *World

	include    BitMask
	excludeAny BitMask
	excludeAll BitMask

	matching *SparseSet[Entity]
}

// NewSystem creates a System with all masks empty and subscribes its
// listeners to world. An add event inserts an entity only when the added
// component is part of the inclusion mask, so while that mask is empty add
// events never insert anything; Rescan admits every live entity that no
// exclusion rejects.
func NewSystem(world *World) *System {
	s := &System{
		world:    world,
		matching: NewSparseSet[Entity](),
	}
	world.SubscribeOnAdd(s.onAdd)
	world.SubscribeOnRemove(s.onRemove)
	return s
}

// Match ORs T's filter bit into the system's inclusion mask.
func Match[T any](s *System) *System {
	s.include = s.include.Or(FilterOf[T]())
	return s
}

// ExcludeAny ORs T's filter bit into the system's exclude-any mask: an
// entity carrying this component is never matched.
func ExcludeAny[T any](s *System) *System {
	s.excludeAny = s.excludeAny.Or(FilterOf[T]())
	return s
}

// ExcludeAll ORs T's filter bit into the system's exclude-all mask: an
// entity is only rejected by this test once its entire mask is contained in
// the accumulated exclude-all set.
func ExcludeAll[T any](s *System) *System {
	s.excludeAll = s.excludeAll.Or(FilterOf[T]())
	return s
}

// Matching returns the ids of every entity currently matching, in the
// matching set's iteration order (not stable across erasures).
func (s *System) Matching() []Entity {
	return s.matching.Data()
}

// IsMatching reports whether e is currently in the matching set.
func (s *System) IsMatching(e Entity) bool {
	return s.matching.Contains(e)
}

func (s *System) rejectedBy(mask BitMask) bool {
	if mask.And(s.excludeAny).AnySet() {
		return true
	}
	if s.excludeAll.AnySet() && mask.And(s.excludeAll).Equal(mask) {
		return true
	}
	return false
}

func (s *System) onAdd(e Entity, maskAfter BitMask, changed BitMask) {
	if s.rejectedBy(maskAfter) {
		s.matching.Erase(e)
		return
	}
	if changed.And(s.include).Equal(changed) && maskAfter.And(s.include).Equal(s.include) {
		s.matching.Insert(e)
	}
}

func (s *System) onRemove(e Entity, maskBefore BitMask, changed BitMask) {
	// A destroyed entity is already gone from the live set when the bulk
	// notification fires, so it always leaves the matching set.
	maskAfter := maskBefore.AndNot(changed)
	if !s.world.IsAlive(e) || s.rejectedBy(maskAfter) || !maskAfter.And(s.include).Equal(s.include) {
		s.matching.Erase(e)
		return
	}
	// Dropping the component that tripped an exclusion re-admits the entity.
	if s.rejectedBy(maskBefore) {
		s.matching.Insert(e)
	}
}

// Rescan rebuilds the matching set from scratch by walking every live
// entity's current mask. A System constructed after entities already exist
// will not reflect them until Rescan is called once.
func (s *System) Rescan() {
	s.matching.Clear()
	for _, e := range s.world.Entities() {
		mask := s.world.EntityMask(e)
		if s.rejectedBy(mask) {
			continue
		}
		if mask.And(s.include).Equal(s.include) {
			s.matching.Insert(e)
		}
	}
}
