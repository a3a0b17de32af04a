package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// bindToStruct populates struct fields from a map of named string values,
// using tagName to resolve field names. Fields without a matching value
// keep their zero value.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := fieldTagName(rt.Field(i), tagName)
		if skip {
			continue
		}

		vals, ok := values[name]
		if !ok || len(vals) == 0 {
			continue
		}

		if err := setFieldValue(field, rt.Field(i).Type, vals); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, rt.Field(i).Name, err)
		}
	}

	return nil
}

// fieldTagName resolves the value name for a struct field. Untagged fields
// default to the lowercase field name; a "-" tag skips the field.
func fieldTagName(field reflect.StructField, tagName string) (name string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	return name, false
}

// setFieldValue assigns string values to a field, dereferencing pointers
// and expanding slices.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if fieldType.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	if len(values) == 0 {
		return nil
	}

	coerced, err := Coerce(values[0], fieldType)
	if err != nil {
		return err
	}
	field.Set(coerced)
	return nil
}

// setSliceValue builds a slice from repeated values; single values may also
// hold comma-separated lists.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	var flat []string
	for _, v := range values {
		if strings.Contains(v, ",") {
			flat = append(flat, strings.Split(v, ",")...)
		} else {
			flat = append(flat, v)
		}
	}

	slice := reflect.MakeSlice(fieldType, len(flat), len(flat))
	for i, v := range flat {
		if err := setFieldValue(slice.Index(i), fieldType.Elem(), []string{strings.TrimSpace(v)}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}

// Coerce converts a raw string into a value of the given scalar type. The
// action invoker uses it to turn route parameters into method arguments;
// the struct binders use it for field assignment.
func Coerce(raw string, t reflect.Type) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		elem, err := Coerce(raw, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	v := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.String:
		v.SetString(sanitizeString(raw))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid int value %q", raw)
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid uint value %q", raw)
		}
		v.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid float value %q", raw)
		}
		v.SetFloat(n)

	case reflect.Bool:
		b, err := parseBool(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)

	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}

	return v, nil
}

// IsScalar reports whether Coerce supports the given type, pointers
// included.
func IsScalar(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// parseBool accepts strconv bool forms plus common form-value spellings.
func parseBool(raw string) (bool, error) {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b, nil
	}
	switch strings.ToLower(raw) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", raw)
}

// sanitizeString strips NUL bytes, CR/LF, and non-printable control
// characters to block header-injection through bound values.
func sanitizeString(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r == '\x00', r == '\r', r == '\n':
			// dropped
		case r == '\t', r >= ' ', unicode.IsGraphic(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
