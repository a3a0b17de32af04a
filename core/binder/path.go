package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a path parameter binder. The extractor is called per struct
// field to look up that field's route parameter; this keeps the binder
// independent of the router implementation.
//
// Struct tags:
//   - `path:"name"` binds to path parameter "name"
//   - `path:"-"` skips the field
//
// Missing parameters leave the field at its zero value.
func Path(extractor func(r *http.Request, name string) string) Binder {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrFailedToParsePath)
		}

		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrFailedToParsePath)
		}

		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			if !field.CanSet() {
				continue
			}

			name, skip := fieldTagName(rt.Field(i), "path")
			if skip {
				continue
			}

			value := extractor(r, name)
			if value == "" {
				continue
			}

			if err := setFieldValue(field, rt.Field(i).Type, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrFailedToParsePath, rt.Field(i).Name, err)
			}
		}

		return nil
	}
}
