package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ericjank/httpkit/core/handler"
)

var (
	// Dispatch errors
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrNilResponse      = errors.New("nil response")

	// Configuration errors
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrInvalidPattern   = errors.New("route pattern must begin with '/'")
	ErrNilHandler       = errors.New("nil handler")
	ErrNilSubrouter     = errors.New("nil subrouter function")
	ErrDuplicateRoute   = errors.New("route already registered")
)

// statusCode lets errors carry a custom HTTP status code into the default
// error handler.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler maps dispatch errors onto plain-text HTTP responses.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// A written response cannot be amended without corrupting the protocol
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	}
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError exposes recovered panic details to custom error handlers.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap lets errors.Is/As reach errors used as panic values.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
