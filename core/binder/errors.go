package binder

import "errors"

var (
	// ErrFailedToParseJSON indicates the request body is not valid JSON or
	// does not match the target struct.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseQuery indicates query parameter conversion failed.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrFailedToParsePath indicates path parameter conversion failed.
	ErrFailedToParsePath = errors.New("failed to parse path parameters")

	// ErrUnsupportedType indicates a target field type no binder can coerce.
	ErrUnsupportedType = errors.New("unsupported target type")

	// ErrBinderNotApplicable indicates the binder cannot process this
	// request (wrong content type, empty body). Callers applying a binder
	// chain usually skip it.
	ErrBinderNotApplicable = errors.New("binder not applicable for this request")
)
