// Package handler defines the contracts shared by the routing and response
// packages: the request Context interface, the HandlerFunc and Middleware
// shapes, and the Response render function.
//
// The package contains no behavior of its own. It exists so that routers,
// response constructors, and middleware can interoperate without importing
// each other.
package handler
