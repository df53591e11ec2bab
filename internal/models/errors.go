package models

import "errors"

var (
	// ErrProjectNotFound is returned when an id does not resolve to a project
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidSeed is returned when the catalog seed breaks an invariant
	ErrInvalidSeed = errors.New("invalid catalog seed")
)
