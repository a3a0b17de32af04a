package router

import (
	"net/http"
	"time"
)

// Context is the default request context. It delegates context.Context
// behavior to the request's context and carries matched route parameters.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params Params
	values map[any]any
}

func newContext(w http.ResponseWriter, r *http.Request, params Params) *Context {
	return &Context{w: w, r: r, params: params}
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns values stored via SetValue first, falling back to the
// request's context.
func (c *Context) Value(key any) any {
	if c.values != nil {
		if v, ok := c.values[key]; ok {
			return v
		}
	}
	return c.r.Context().Value(key)
}

// SetValue stores a request-scoped value retrievable via Value.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Request returns the incoming HTTP request.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the writer for the outgoing response.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value of a named route parameter.
func (c *Context) Param(key string) string {
	return c.params.Get(key)
}

// Params returns all matched route parameters in pattern order.
func (c *Context) Params() Params {
	return c.params
}

// ParamValues returns route parameter values in pattern order. The action
// invoker relies on this for positional scalar coercion.
func (c *Context) ParamValues() []string {
	return c.params.Values()
}
