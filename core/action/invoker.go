package action

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/ericjank/httpkit/core/container"
	"github.com/ericjank/httpkit/core/handler"
	"github.com/ericjank/httpkit/core/response"
)

// Invoker dispatches handler descriptors to controller methods. Controller
// instances come from the DI container, method parameter definitions are
// cached per (controller, method), and arguments are produced by the
// resolver chain.
type Invoker struct {
	container *container.Container
	registry  *Registry
	extra     []ArgumentResolver

	mu          sync.RWMutex
	controllers map[string]reflect.Type

	defs sync.Map // defKey -> *methodDef
}

// Option configures an Invoker during creation.
type Option func(*Invoker)

// WithResolvers prepends custom argument resolvers to the default chain,
// letting applications inject their own parameter types.
func WithResolvers(resolvers ...ArgumentResolver) Option {
	return func(inv *Invoker) {
		inv.extra = append(inv.extra, resolvers...)
	}
}

// NewInvoker creates an invoker bound to the given container.
func NewInvoker(c *container.Container, opts ...Option) *Invoker {
	inv := &Invoker{
		container:   c,
		controllers: make(map[string]reflect.Type),
	}
	for _, opt := range opts {
		opt(inv)
	}
	inv.registry = NewRegistry(append(inv.extra, defaultResolvers(c)...)...)
	return inv
}

// RegisterController binds a descriptor name to a controller type. The
// prototype carries the type only; instances are resolved from the
// container per dispatch, so the controller itself must be provided there.
//
//	c.Provide(func(svc *UserService) *UserController { ... })
//	inv.RegisterController("UserController", (*UserController)(nil))
func (inv *Invoker) RegisterController(name string, prototype any) error {
	if name == "" || prototype == nil {
		return fmt.Errorf("%w: empty controller registration", ErrInvalidDescriptor)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, exists := inv.controllers[name]; exists {
		return fmt.Errorf("%w: %s", ErrControllerExists, name)
	}
	inv.controllers[name] = reflect.TypeOf(prototype)
	return nil
}

// Invoke resolves and calls the action identified by the descriptor,
// normalizing the return value into a response. Failures surface as
// responses that propagate the error to the router's error handler.
func (inv *Invoker) Invoke(ctx handler.Context, desc Descriptor) handler.Response {
	resp, err := inv.invoke(ctx, desc)
	if err != nil {
		return response.Error(err)
	}
	return resp
}

func (inv *Invoker) invoke(ctx handler.Context, desc Descriptor) (handler.Response, error) {
	inv.mu.RLock()
	ctrlType, ok := inv.controllers[desc.Controller]
	inv.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownController, desc.Controller)
	}

	def, err := inv.methodDef(ctrlType, desc.Method)
	if err != nil {
		return nil, err
	}

	instance, err := inv.container.Resolve(ctrlType)
	if err != nil {
		return nil, fmt.Errorf("resolving controller %s: %w", desc.Controller, err)
	}

	values := make([]reflect.Value, len(def.params)+1)
	values[0] = reflect.ValueOf(instance)
	for _, p := range def.params {
		arg, err := inv.registry.Resolve(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", desc, err)
		}
		if arg == nil {
			values[p.Index+1] = reflect.Zero(p.Type)
		} else {
			values[p.Index+1] = reflect.ValueOf(arg)
		}
	}

	out := def.method.Func.Call(values)

	if def.retErr {
		if errv := out[len(out)-1]; !errv.IsNil() {
			return nil, errv.Interface().(error)
		}
		out = out[:len(out)-1]
	}

	if len(out) == 0 {
		return response.NoContent(), nil
	}
	return response.Normalize(out[0].Interface()), nil
}

// methodDef returns the cached definition for a controller method, building
// it on first use.
func (inv *Invoker) methodDef(ctrlType reflect.Type, name string) (*methodDef, error) {
	key := defKey{ctrl: ctrlType, name: name}
	if v, ok := inv.defs.Load(key); ok {
		return v.(*methodDef), nil
	}

	def, err := buildMethodDef(ctrlType, name)
	if err != nil {
		return nil, err
	}

	actual, _ := inv.defs.LoadOrStore(key, def)
	return actual.(*methodDef), nil
}

// Handler adapts a handler descriptor into a typed router handler. Parse
// failures surface at request time through the error handler, keeping
// registration infallible.
//
//	r.Get("/users/{id}", action.Handler[*router.Context](inv, "UserController@Show"))
func Handler[C handler.Context](inv *Invoker, descriptor string) handler.HandlerFunc[C] {
	desc, err := ParseDescriptor(descriptor)
	if err != nil {
		return func(C) handler.Response { return response.Error(err) }
	}
	return func(ctx C) handler.Response {
		return inv.Invoke(ctx, desc)
	}
}
