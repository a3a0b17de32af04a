// Package response provides constructors for common HTTP responses (plain
// text, HTML, JSON, redirects, templ components) and Normalize, which maps
// arbitrary controller return values onto responses with a computed
// Content-Type.
//
// All constructors return handler.Response functions, so responses compose
// with middleware that wraps rendering.
package response
