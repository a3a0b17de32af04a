package container

import (
	"fmt"
	"reflect"
	"sync"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// provider holds either a constructor function or an already-built value.
// Constructed values are cached, so every provider yields a singleton.
type provider struct {
	constructor reflect.Value
	value       reflect.Value
	built       bool
}

// Container is a type-indexed service registry. Services are registered as
// constructor functions whose arguments are resolved recursively from the
// container, or as pre-built instances. Safe for concurrent use.
type Container struct {
	mu        sync.Mutex
	providers map[reflect.Type]*provider
}

// New creates an empty container.
func New() *Container {
	return &Container{providers: make(map[reflect.Type]*provider)}
}

// Provide registers a constructor function. The constructor must be a
// function returning exactly one value, optionally followed by an error:
//
//	c.Provide(func(repo *UserRepo) *UserService { ... })
//	c.Provide(func() (*pgxpool.Pool, error) { ... })
//
// The service is registered under the constructor's first return type.
// Constructor arguments are resolved from the container on demand.
func (c *Container) Provide(constructor any) error {
	fn := reflect.ValueOf(constructor)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return fmt.Errorf("%w: expected a function, got %T", ErrInvalidConstructor, constructor)
	}

	ft := fn.Type()
	switch ft.NumOut() {
	case 1:
		if ft.Out(0) == errType {
			return fmt.Errorf("%w: constructor must return a value, not only an error", ErrInvalidConstructor)
		}
	case 2:
		if ft.Out(1) != errType {
			return fmt.Errorf("%w: second return value must be error", ErrInvalidConstructor)
		}
	default:
		return fmt.Errorf("%w: constructor must return (T) or (T, error)", ErrInvalidConstructor)
	}

	svcType := ft.Out(0)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.providers[svcType]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, svcType)
	}
	c.providers[svcType] = &provider{constructor: fn}
	return nil
}

// Instance registers a pre-built value under its own type.
func (c *Container) Instance(value any) error {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return fmt.Errorf("%w: nil instance", ErrInvalidConstructor)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.providers[v.Type()]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, v.Type())
	}
	c.providers[v.Type()] = &provider{value: v, built: true}
	return nil
}

// Has reports whether the container can resolve the given type, either
// directly or through interface matching.
func (c *Container) Has(t reflect.Type) bool {
	if t == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.providers[t]; ok {
		return true
	}
	if t.Kind() == reflect.Interface {
		_, err := c.implementors(t)
		return err == nil
	}
	return false
}

// Resolve returns the service registered for the given type, constructing
// it and its transitive dependencies on first use. Resolving an interface
// with exactly one registered implementor returns that implementor.
func (c *Container) Resolve(t reflect.Type) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrNotRegistered)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	v, err := c.resolve(t, make(map[reflect.Type]bool))
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// ResolveAs is a generic convenience wrapper around Resolve.
func ResolveAs[T any](c *Container) (T, error) {
	var zero T
	v, err := c.Resolve(reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// resolve walks the dependency graph. The resolving set detects cycles.
// Callers must hold c.mu.
func (c *Container) resolve(t reflect.Type, resolving map[reflect.Type]bool) (reflect.Value, error) {
	p, ok := c.providers[t]
	if !ok && t.Kind() == reflect.Interface {
		match, err := c.implementors(t)
		if err != nil {
			return reflect.Value{}, err
		}
		p, ok = c.providers[match], true
		t = match
	}
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotRegistered, t)
	}

	if p.built {
		return p.value, nil
	}

	if resolving[t] {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrCircularDependency, t)
	}
	resolving[t] = true
	defer delete(resolving, t)

	ft := p.constructor.Type()
	args := make([]reflect.Value, ft.NumIn())
	for i := range args {
		arg, err := c.resolve(ft.In(i), resolving)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("constructing %s: %w", t, err)
		}
		args[i] = arg
	}

	out := p.constructor.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return reflect.Value{}, fmt.Errorf("constructing %s: %w", t, out[1].Interface().(error))
	}

	p.value = out[0]
	p.built = true
	return p.value, nil
}

// implementors finds the registered type satisfying the given interface.
// More than one match is an error so resolution stays deterministic.
func (c *Container) implementors(iface reflect.Type) (reflect.Type, error) {
	var match reflect.Type
	for t := range c.providers {
		if t.Implements(iface) {
			if match != nil {
				return nil, fmt.Errorf("%w: %s has multiple implementations", ErrAmbiguousResolution, iface)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, iface)
	}
	return match, nil
}
