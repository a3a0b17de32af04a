package action

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/ericjank/httpkit/core/binder"
	"github.com/ericjank/httpkit/core/container"
	"github.com/ericjank/httpkit/core/handler"
)

var (
	ctxType     = reflect.TypeFor[handler.Context]()
	stdCtxType  = reflect.TypeFor[context.Context]()
	requestType = reflect.TypeFor[*http.Request]()
	writerType  = reflect.TypeFor[http.ResponseWriter]()
)

// ArgumentResolver produces a value for one action method parameter.
// Resolvers are consulted in registration order; the first whose Supports
// returns true wins.
type ArgumentResolver interface {
	Supports(def ParamDef) bool
	Resolve(ctx handler.Context, def ParamDef) (any, error)
}

// Registry evaluates an ordered chain of argument resolvers.
type Registry struct {
	resolvers []ArgumentResolver
}

// NewRegistry creates a registry with the given resolver chain.
func NewRegistry(resolvers ...ArgumentResolver) *Registry {
	return &Registry{resolvers: resolvers}
}

// Resolve finds the first resolver supporting the parameter and delegates
// to it. A parameter no resolver supports is an ErrUnresolvableParameter.
func (r *Registry) Resolve(ctx handler.Context, def ParamDef) (any, error) {
	for _, resolver := range r.resolvers {
		if resolver.Supports(def) {
			return resolver.Resolve(ctx, def)
		}
	}
	return nil, fmt.Errorf("%w: argument %d of type %s", ErrUnresolvableParameter, def.Index, def.Type)
}

// defaultResolvers builds the standard chain: request context, raw
// request/writer, positional scalars, container services, bound DTOs.
func defaultResolvers(c *container.Container) []ArgumentResolver {
	return []ArgumentResolver{
		contextResolver{},
		requestResolver{},
		scalarResolver{},
		serviceResolver{container: c},
		dtoResolver{},
	}
}

// contextResolver handles handler.Context and context.Context parameters.
type contextResolver struct{}

func (contextResolver) Supports(def ParamDef) bool {
	return def.Type == ctxType || def.Type == stdCtxType
}

func (contextResolver) Resolve(ctx handler.Context, _ ParamDef) (any, error) {
	return ctx, nil
}

// requestResolver handles *http.Request and http.ResponseWriter parameters.
type requestResolver struct{}

func (requestResolver) Supports(def ParamDef) bool {
	return def.Type == requestType || def.Type == writerType
}

func (requestResolver) Resolve(ctx handler.Context, def ParamDef) (any, error) {
	if def.Type == requestType {
		return ctx.Request(), nil
	}
	return ctx.ResponseWriter(), nil
}

// paramValuer is the optional context capability exposing matched route
// parameter values in pattern order. The default router context implements
// it; custom contexts must too for positional scalar arguments to work.
type paramValuer interface {
	ParamValues() []string
}

// scalarResolver coerces route parameters into scalar arguments by
// position: the n-th scalar parameter of the method takes the n-th route
// parameter of the pattern.
type scalarResolver struct{}

func (scalarResolver) Supports(def ParamDef) bool {
	return def.ScalarPos >= 0
}

func (scalarResolver) Resolve(ctx handler.Context, def ParamDef) (any, error) {
	pv, ok := ctx.(paramValuer)
	if !ok {
		return nil, fmt.Errorf("%w: context %T does not expose ordered route parameters", ErrUnresolvableParameter, ctx)
	}

	vals := pv.ParamValues()
	if def.ScalarPos >= len(vals) {
		// Missing route params are only acceptable for optional pointers
		if def.Type.Kind() == reflect.Pointer {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: no route parameter for argument %d", ErrUnresolvableParameter, def.Index)
	}

	v, err := binder.Coerce(vals[def.ScalarPos], def.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: argument %d: %v", ErrUnresolvableParameter, def.Index, err)
	}
	return v.Interface(), nil
}

// serviceResolver pulls object dependencies out of the DI container.
type serviceResolver struct {
	container *container.Container
}

func (s serviceResolver) Supports(def ParamDef) bool {
	return s.container.Has(def.Type)
}

func (s serviceResolver) Resolve(_ handler.Context, def ParamDef) (any, error) {
	return s.container.Resolve(def.Type)
}

// dtoResolver binds struct parameters from the request: path params first,
// then query string, then a JSON body when present.
type dtoResolver struct{}

func (dtoResolver) Supports(def ParamDef) bool {
	t := def.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func (dtoResolver) Resolve(ctx handler.Context, def ParamDef) (any, error) {
	st := def.Type
	isPtr := st.Kind() == reflect.Pointer
	if isPtr {
		st = st.Elem()
	}

	target := reflect.New(st)
	binders := []binder.Binder{
		binder.Path(func(_ *http.Request, name string) string {
			return ctx.Param(name)
		}),
		binder.Query(),
		binder.JSON(),
	}
	for _, bind := range binders {
		if err := bind(ctx.Request(), target.Interface()); err != nil && !errors.Is(err, binder.ErrBinderNotApplicable) {
			return nil, err
		}
	}

	if isPtr {
		return target.Interface(), nil
	}
	return target.Elem().Interface(), nil
}
