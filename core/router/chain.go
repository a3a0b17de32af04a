package router

import "github.com/ericjank/httpkit/core/handler"

// chain composes a middleware stack around an endpoint. Middleware is
// applied in reverse so the first registered middleware runs first.
func chain[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
