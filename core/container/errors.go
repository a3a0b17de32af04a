package container

import "errors"

var (
	// ErrNotRegistered indicates no provider exists for the requested type.
	ErrNotRegistered = errors.New("type not registered")

	// ErrAlreadyRegistered indicates a provider already exists for the type.
	ErrAlreadyRegistered = errors.New("type already registered")

	// ErrInvalidConstructor indicates a Provide argument with an
	// unsupported shape.
	ErrInvalidConstructor = errors.New("invalid constructor")

	// ErrCircularDependency indicates a cycle in the constructor graph.
	ErrCircularDependency = errors.New("circular dependency")

	// ErrAmbiguousResolution indicates an interface with more than one
	// registered implementation.
	ErrAmbiguousResolution = errors.New("ambiguous resolution")
)
