package handler

import "net/http"

// Response renders an HTTP response. It is responsible for setting headers,
// the status code, and writing the body. Errors returned from a Response are
// routed to the router's error handler, which only acts if nothing has been
// written yet.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe request handler bound to a custom context type.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler converts errors raised during dispatch into HTTP responses.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler to add cross-cutting behavior.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
