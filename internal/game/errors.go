package game

import "errors"

var (
	// ErrConstruction is returned when a kind cannot build an entity from
	// the fields it was given.
	ErrConstruction = errors.New("construction failed")
	// ErrAttachment is returned when an entity cannot be attached to a parent.
	ErrAttachment = errors.New("attachment failed")
	// ErrDestroyed is returned when operating on an entity that was destroyed.
	ErrDestroyed = errors.New("entity destroyed")
)
