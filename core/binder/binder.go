package binder

import "net/http"

// Binder binds data from an HTTP request into a Go value. Binders for the
// different request parts (path, query, JSON body) share this shape so they
// can be applied in sequence to populate a single target struct.
type Binder func(r *http.Request, v any) error
