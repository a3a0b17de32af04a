package action

import "errors"

var (
	// ErrInvalidDescriptor indicates a malformed handler descriptor or a
	// descriptor naming a method the controller does not have.
	ErrInvalidDescriptor = errors.New("invalid handler descriptor")

	// ErrUnknownController indicates a descriptor naming an unregistered
	// controller.
	ErrUnknownController = errors.New("unknown controller")

	// ErrControllerExists indicates a duplicate controller registration.
	ErrControllerExists = errors.New("controller already registered")

	// ErrInvalidSignature indicates an action method with a return shape
	// the invoker does not support.
	ErrInvalidSignature = errors.New("invalid action signature")

	// ErrUnresolvableParameter indicates a method parameter no argument
	// resolver could produce a value for.
	ErrUnresolvableParameter = errors.New("unresolvable parameter")
)
