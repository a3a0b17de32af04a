package action

import (
	"fmt"
	"reflect"

	"github.com/ericjank/httpkit/core/binder"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// ParamDef describes a single parameter in an action method signature.
type ParamDef struct {
	// Index is the parameter's position in the signature, excluding the
	// receiver.
	Index int

	// Type is the declared parameter type.
	Type reflect.Type

	// ScalarPos is the parameter's ordinal among the scalar parameters of
	// the method, or -1 for non-scalars. Scalar parameters consume route
	// parameters positionally in this order.
	ScalarPos int
}

// methodDef is the cached definition of an action method: the resolved
// reflect method, its parameter definitions, and the return contract.
type methodDef struct {
	method reflect.Method
	params []ParamDef
	retErr bool
}

// defKey keys the definition cache by controller type and method name.
type defKey struct {
	ctrl reflect.Type
	name string
}

// buildMethodDef inspects a controller method and derives its parameter
// definition list and return contract. Supported return shapes are none,
// (T), (error), and (T, error).
func buildMethodDef(ctrlType reflect.Type, name string) (*methodDef, error) {
	m, ok := ctrlType.MethodByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no method %s", ErrInvalidDescriptor, ctrlType, name)
	}

	mt := m.Func.Type()
	if mt.IsVariadic() {
		return nil, fmt.Errorf("%w: %s.%s is variadic", ErrInvalidSignature, ctrlType, name)
	}

	switch mt.NumOut() {
	case 0, 1:
	case 2:
		if mt.Out(1) != errType {
			return nil, fmt.Errorf("%w: %s.%s second return value must be error", ErrInvalidSignature, ctrlType, name)
		}
	default:
		return nil, fmt.Errorf("%w: %s.%s returns %d values", ErrInvalidSignature, ctrlType, name, mt.NumOut())
	}

	retErr := mt.NumOut() > 0 && mt.Out(mt.NumOut()-1) == errType

	// In(0) is the receiver
	params := make([]ParamDef, 0, mt.NumIn()-1)
	scalars := 0
	for i := 1; i < mt.NumIn(); i++ {
		def := ParamDef{Index: i - 1, Type: mt.In(i), ScalarPos: -1}
		if binder.IsScalar(def.Type) {
			def.ScalarPos = scalars
			scalars++
		}
		params = append(params, def)
	}

	return &methodDef{method: m, params: params, retErr: retErr}, nil
}
