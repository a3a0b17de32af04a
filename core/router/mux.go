package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ericjank/httpkit/core/handler"
)

// knownMethods is the set of HTTP methods the dispatcher accepts, in the
// order used when probing for the Allow header.
var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

func isKnownMethod(method string) bool {
	for _, m := range knownMethods {
		if m == method {
			return true
		}
	}
	return false
}

// noopHandler occupies tree nodes in the underlying chi mux. Matching goes
// through Match, never through chi's ServeHTTP, so it is never invoked.
var noopHandler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

// keyPattern applies the same normalization chi's RoutePattern performs on
// matched patterns, so endpoint keys stored at registration always agree
// with the pattern reported at dispatch. Notably a trailing slash is
// trimmed from every pattern except "/".
func keyPattern(pattern string) string {
	if pattern != "/" {
		pattern = strings.TrimSuffix(pattern, "//")
		pattern = strings.TrimSuffix(pattern, "/")
	}
	return pattern
}

// mux is the private implementation of Router. Route matching is delegated
// to a chi mux used purely as the pattern-matching engine; the dispatch
// outcome handling (found / not found / method not allowed) lives here.
type mux[C handler.Context] struct {
	// dispatch state, owned by the root mux
	tree         *chi.Mux
	endpoints    map[string]handler.HandlerFunc[C]
	routes       []Route
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, Params) C
	logger       *slog.Logger

	// scope state
	root        *mux[C]
	prefix      string
	middlewares []handler.Middleware[C]
	registered  bool
}

// newMux creates a new root router instance.
func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		tree:         chi.NewRouter(),
		endpoints:    make(map[string]handler.HandlerFunc[C]),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	m.root = m

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params Params) C {
			// Without a factory only the default *Context type is supported.
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// ServeHTTP implements http.Handler. It resolves the request to one of three
// dispatch outcomes: a matched handler, 404 when no pattern matches the path,
// or 405 with an Allow header when the path matches under other methods.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if m.root != m {
		m.root.ServeHTTP(w, r)
		return
	}

	ww := newResponseWriter(w)

	// RawPath preserves URL encoding when present
	path := r.URL.Path
	if r.URL.RawPath != "" {
		path = r.URL.RawPath
	}
	if path == "" {
		path = "/"
	}

	if !isKnownMethod(r.Method) {
		m.errorHandler(m.newContext(ww, r, nil), ErrMethodNotAllowed)
		return
	}

	rctx := chi.NewRouteContext()
	if !m.tree.Match(rctx, r.Method, path) {
		ctx := m.newContext(ww, r, nil)
		if allowed := m.allowedMethods(r.Method, path); len(allowed) > 0 {
			ww.Header().Set("Allow", strings.Join(allowed, ", "))
			m.errorHandler(ctx, ErrMethodNotAllowed)
		} else {
			m.errorHandler(ctx, ErrNotFound)
		}
		return
	}

	params := make(Params, 0, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) {
			params = append(params, Param{Key: key, Value: rctx.URLParams.Values[i]})
		}
	}

	ctx := m.newContext(ww, r, params)

	// Recover handler panics so a single request cannot take the server down
	defer func() {
		if p := recover(); p != nil {
			perr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				m.logger.Error("panic after response written",
					"value", perr.value,
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"stack", string(perr.stack),
				)
				return
			}
			m.errorHandler(ctx, perr)
		}
	}()

	h, ok := m.endpoints[r.Method+" "+rctx.RoutePattern()]
	if !ok {
		m.errorHandler(ctx, ErrNotFound)
		return
	}

	if len(m.middlewares) > 0 {
		h = chain(m.middlewares, h)
	}

	resp := h(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := resp(ww, r); err != nil && !ww.Written() {
		m.errorHandler(ctx, err)
	}
}

// allowedMethods probes the route tree with every other known method to
// build the Allow header for 405 responses.
func (m *mux[C]) allowedMethods(method, path string) []string {
	var allowed []string
	for _, probe := range knownMethods {
		if probe == method {
			continue
		}
		rctx := chi.NewRouteContext()
		if m.tree.Match(rctx, probe, path) {
			allowed = append(allowed, probe)
		}
	}
	return allowed
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

// Head registers a handler for HEAD requests.
func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodHead, pattern, h)
}

// Options registers a handler for OPTIONS requests.
func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodOptions, pattern, h)
}

// Connect registers a handler for CONNECT requests.
func (m *mux[C]) Connect(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodConnect, pattern, h)
}

// Trace registers a handler for TRACE requests.
func (m *mux[C]) Trace(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodTrace, pattern, h)
}

// Handle registers a handler for every known HTTP method.
func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	for _, method := range knownMethods {
		m.handle(method, pattern, h)
	}
}

// Method registers a handler for one or more specific HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !isKnownMethod(method) {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

// Use appends middleware to this router scope. Middleware must be added
// before routes are registered on the same scope.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.registered {
		panic("router: all middlewares must be defined before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// With creates an inline scope sharing the route tree but carrying
// additional middleware for routes registered through it.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	var inherited []handler.Middleware[C]
	if m.root != m {
		// Root middleware is applied at dispatch time; only nested scope
		// middleware accumulates at registration time.
		inherited = m.middlewares
	}

	mws := make([]handler.Middleware[C], 0, len(inherited)+len(middlewares))
	mws = append(mws, inherited...)
	mws = append(mws, middlewares...)

	return &mux[C]{
		root:        m.root,
		prefix:      m.prefix,
		middlewares: mws,
	}
}

// Group creates an inline scope for grouping routes under shared middleware.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	g := m.With()
	if fn != nil {
		fn(g)
	}
	return g
}

// Route creates a scope whose routes are registered under the given prefix.
func (m *mux[C]) Route(pattern string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Errorf("%w on %q", ErrNilSubrouter, pattern))
	}
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: %q", ErrInvalidPattern, pattern))
	}

	sub := m.With().(*mux[C])
	sub.prefix = m.prefix + strings.TrimSuffix(pattern, "/")
	fn(sub)
	return sub
}

// Routes returns all registered routes.
func (m *mux[C]) Routes() []Route {
	rt := m.root
	routes := make([]Route, len(rt.routes))
	copy(routes, rt.routes)
	return routes
}

// handle registers a handler in the shared route tree, chaining scope
// middleware into the stored endpoint.
func (m *mux[C]) handle(method, pattern string, h handler.HandlerFunc[C]) {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: %q", ErrInvalidPattern, pattern))
	}
	if h == nil {
		panic(fmt.Errorf("%w: %s %s", ErrNilHandler, method, pattern))
	}

	full := m.prefix + pattern
	if m.prefix != "" && pattern == "/" {
		full = m.prefix
	}

	rt := m.root
	key := method + " " + keyPattern(full)
	if _, exists := rt.endpoints[key]; exists {
		panic(fmt.Errorf("%w: %s", ErrDuplicateRoute, key))
	}

	if m.root != m && len(m.middlewares) > 0 {
		h = chain(m.middlewares, h)
	}

	rt.tree.Method(method, full, noopHandler)
	rt.endpoints[key] = h
	rt.routes = append(rt.routes, Route{Method: method, Pattern: full})
	m.registered = true
	rt.registered = true
}
