package router

import (
	"net/http"

	"github.com/ericjank/httpkit/core/handler"
)

// Router matches incoming requests against registered routes and drives the
// dispatch pipeline: route lookup, middleware chaining, handler invocation,
// and response rendering. It supports middleware scoping and route grouping.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	// HTTP method registrars
	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])
	Options(pattern string, h handler.HandlerFunc[C])
	Connect(pattern string, h handler.HandlerFunc[C])
	Trace(pattern string, h handler.HandlerFunc[C])

	// Generic registrars
	Handle(pattern string, h handler.HandlerFunc[C])
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Middleware
	Use(middlewares ...handler.Middleware[C])
	With(middlewares ...handler.Middleware[C]) Router[C]

	// Grouping
	Group(fn func(r Router[C])) Router[C]
	Route(pattern string, fn func(r Router[C])) Router[C]
}

// Routes provides route introspection for debugging and monitoring.
type Routes interface {
	Routes() []Route
}

// Route describes a single registered route.
type Route struct {
	Method  string
	Pattern string
}

// Param is a single route parameter extracted from the matched pattern.
type Param struct {
	Key   string
	Value string
}

// Params holds route parameters in pattern order. Order matters for
// positional argument coercion in the action invoker.
type Params []Param

// Get returns the value for the given parameter key, or "".
func (ps Params) Get(key string) string {
	for _, p := range ps {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// Values returns the parameter values in pattern order.
func (ps Params) Values() []string {
	if len(ps) == 0 {
		return nil
	}
	vals := make([]string, len(ps))
	for i, p := range ps {
		vals[i] = p.Value
	}
	return vals
}

// New creates a new router with the given options. The type parameter fixes
// the context type handlers receive; use *Context for the default one.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
