// Package router implements the request-dispatch pipeline: it matches an
// incoming request against registered routes, builds a typed request
// context, runs the middleware chain, invokes the handler, and renders the
// returned response.
//
// Pattern matching is delegated to go-chi/chi's routing tree; this package
// owns classifying the match into one of three dispatch outcomes:
//
//   - found: URL params are transferred to the context and the handler runs
//   - not found: the error handler receives ErrNotFound (404 by default)
//   - method not allowed: the Allow header is set from the methods that do
//     match the path, and the error handler receives ErrMethodNotAllowed
//
// Basic usage:
//
//	r := router.New[*router.Context]()
//	r.Use(middleware.RequestID[*router.Context]())
//	r.Get("/users/{id}", func(ctx *router.Context) handler.Response {
//		return response.JSON(map[string]string{"id": ctx.Param("id")})
//	})
//	http.ListenAndServe(":8080", r)
//
// Handler panics are recovered and routed to the error handler as a
// PanicError carrying the panic value and stack trace.
package router
