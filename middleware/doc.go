// Package middleware provides generic middleware for the typed handler
// chain: request ID propagation and structured request logging. All
// middleware follows the handler.Middleware shape and works with any
// context type satisfying handler.Context.
package middleware
