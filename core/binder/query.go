package binder

import "net/http"

// Query creates a query parameter binder.
//
// Struct tags:
//   - `query:"name"` binds to query parameter "name"
//   - `query:"-"` skips the field
//
// Slices accept repeated parameters (?tag=a&tag=b) and comma-separated
// values (?tag=a,b). Pointer fields stay nil when the parameter is absent.
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
