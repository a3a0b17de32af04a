// Package action dispatches handler descriptors to controller methods
// through dependency injection. A descriptor like "UserController@Show"
// names a controller registered with the Invoker; the controller instance
// is resolved from the container, the method's parameter list is inspected
// once and cached, and each argument is produced by a resolver chain:
//
//   - handler.Context / context.Context parameters receive the request
//     context
//   - *http.Request and http.ResponseWriter receive the raw request pair
//   - scalar parameters (string, numbers, bool) consume matched route
//     parameters positionally, coerced to the declared type
//   - anything registered in the container is resolved as a service
//   - remaining struct parameters are bound from path, query, and JSON
//     body data
//
// Return values follow a small contract: a trailing error aborts the
// dispatch, and the remaining value (if any) is normalized into a response
// via response.Normalize. A method with no results yields 204 No Content.
//
//	c := container.New()
//	c.Provide(NewUserService)
//	c.Provide(NewUserController)
//
//	inv := action.NewInvoker(c)
//	inv.RegisterController("UserController", (*UserController)(nil))
//
//	r := router.New[*router.Context]()
//	r.Get("/users/{id}", action.Handler[*router.Context](inv, "UserController@Show"))
//
// Because Go reflection exposes no parameter names, route parameters map to
// scalar arguments by position, not by name: the first scalar parameter
// takes the first route parameter of the pattern, and so on. Optional
// trailing scalars must be pointers.
package action
