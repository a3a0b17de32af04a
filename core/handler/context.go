package handler

import (
	"context"
	"net/http"
)

// Context is the contract every request context must satisfy. It behaves as
// a context.Context scoped to the request and gives handlers access to the
// underlying request, response writer, and matched route parameters.
//
// The router ships a default implementation; applications define their own
// context types to carry request-scoped dependencies (session, current user,
// locale) through the handler chain.
type Context interface {
	context.Context

	// Request returns the incoming HTTP request.
	Request() *http.Request

	// ResponseWriter returns the writer for the outgoing response.
	ResponseWriter() http.ResponseWriter

	// Param returns the value of a named route parameter, or "" when the
	// matched pattern has no such parameter.
	Param(key string) string

	// SetValue stores a request-scoped value retrievable via Value.
	SetValue(key, val any)
}
