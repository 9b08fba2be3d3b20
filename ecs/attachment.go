package ecs

import "errors"

// Attachment is a type-erased component value plus the knowledge of how to
// attach itself to an entity. Go methods cannot take their own type
// parameters, so attaching a heterogeneous set of component types to one
// entity in a single call is expressed as a variadic slice of Attachments
// built with With, rather than a single generic method.
type Attachment interface {
	attach(w *World, e Entity) error
}

type typedAttachment[T any] struct {
	value T
}

func (a typedAttachment[T]) attach(w *World, e Entity) error {
	return AddComponent(w, e, a.value)
}

// With packages a component value for use with World.AddComponents or
// World.CreateEntityWith.
func With[T any](value T) Attachment {
	return typedAttachment[T]{value: value}
}

// AddComponents attaches every component in order. A failure on one
// attachment does not prevent the rest from being attempted; errors from
// every failed attachment are joined and returned.
func (w *World) AddComponents(e Entity, attachments ...Attachment) error {
	var errs []error
	for _, a := range attachments {
		if err := a.attach(w, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
