package ecs

import "reflect"

// ComponentID is a stable, process-wide id in [0, MaxComponents) assigned to
// a component type on first observation.
type ComponentID uint32

type componentType struct {
	id     ComponentID
	filter BitMask
	size   uintptr
}

// componentRegistry assigns ids in first-observation order. It is
// process-global rather than per-world, so two worlds in the same process
// share the same id and filter for a given component type; that is why it
// lives in a package-level variable instead of on World.
type componentRegistry struct {
	byType map[reflect.Type]*componentType
	nextID ComponentID
}

var globalRegistry = &componentRegistry{
	byType: make(map[reflect.Type]*componentType),
}

func registerType[T any]() *componentType {
	var zero T
	rt := reflect.TypeOf(zero)

	if ct, ok := globalRegistry.byType[rt]; ok {
		return ct
	}
	if globalRegistry.nextID >= MaxComponents {
		panic(ErrCapacityExceeded{Type: rt})
	}

	ct := &componentType{
		id:   globalRegistry.nextID,
		size: rt.Size(),
	}
	ct.filter.Set(ct.id)
	globalRegistry.nextID++
	globalRegistry.byType[rt] = ct
	return ct
}

// RegisterComponent assigns (or looks up) the stable ComponentID for T.
func RegisterComponent[T any]() ComponentID {
	return registerType[T]().id
}

// FilterOf returns the single-bit BitMask for T.
func FilterOf[T any]() BitMask {
	return registerType[T]().filter
}

// SizeOf returns the size in bytes of T's record, as observed by the
// registry. A type's size is fixed once registered and never changes.
func SizeOf[T any]() uintptr {
	return registerType[T]().size
}
