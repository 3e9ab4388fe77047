package model

import "errors"

var (
	ErrFeatureNotFound  = errors.New("feature not found")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrNotContainment   = errors.New("feature is not a containment reference")
	ErrContainmentCycle = errors.New("containment cycle")
	ErrNotOwned         = errors.New("object is not owned by this container")
	ErrDuplicate        = errors.New("object appears twice in a containment list")
)
