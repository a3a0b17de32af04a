package router

import (
	"log/slog"
	"net/http"

	"github.com/ericjank/httpkit/core/handler"
)

// Option configures a Router during creation.
type Option[C handler.Context] func(*mux[C])

// WithErrorHandler sets a custom error handler for the router.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(m *mux[C]) {
		if h != nil {
			m.errorHandler = h
		}
	}
}

// WithContextFactory sets the factory used to build the typed request
// context for each dispatch. Required for custom context types.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request, Params) C) Option[C] {
	return func(m *mux[C]) {
		m.newContext = f
	}
}

// WithMiddleware adds middleware to the root scope.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(m *mux[C]) {
		m.middlewares = append(m.middlewares, middlewares...)
	}
}

// WithLogger sets the logger used for panics recovered after a response
// was already written.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(m *mux[C]) {
		if logger != nil {
			m.logger = logger
		}
	}
}
