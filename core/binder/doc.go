// Package binder extracts and coerces HTTP request data into Go structs.
// Each binder covers one request part (path parameters, query string, JSON
// body) and binders compose by applying them in sequence to the same
// target:
//
//	type ShowRequest struct {
//		ID     int64  `path:"id"`
//		Expand bool   `query:"expand"`
//		Note   string `json:"note"`
//	}
//
//	var req ShowRequest
//	for _, bind := range []binder.Binder{
//		binder.Path(extractor),
//		binder.Query(),
//		binder.JSON(),
//	} {
//		if err := bind(r, &req); err != nil && !errors.Is(err, binder.ErrBinderNotApplicable) {
//			// 400 Bad Request
//		}
//	}
//
// Scalar coercion (string, integers, floats, bool, pointers, slices) is
// shared through Coerce, which the action invoker also uses for positional
// route-parameter arguments. Bound strings are sanitized against CRLF and
// control-character injection.
package binder
