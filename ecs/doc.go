/*
Package ecs is a small entity-component-system runtime: a World holds
entities and their components, and a System incrementally tracks the set of
entities matching a declarative filter.

Entities are dense uint32 ids recycled verbatim on destruction. Each
component type gets a stable id and bit from a process-global registry on
first use, a contiguous per-world array indexed directly by entity id, and
a BitMask bit tracked per entity. A System declares inclusion and exclusion
masks and maintains its matching set by listening to the World's add/remove
events rather than scanning.

Basic usage:

	w := ecs.NewWorld(1024)
	moving := ecs.Match[Velocity](ecs.Match[Position](ecs.NewSystem(w)))

	e, _ := w.CreateEntityWith(ecs.With(Position{X: 1, Y: 2}), ecs.With(Velocity{X: 1}))
	ecs.ForEach2(w, moving.Matching(), func(e ecs.Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
	})

Everything in this package assumes single-threaded, cooperative use: a
World and its Systems form one apartment, and no operation blocks.
*/
package ecs
