package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized reports whether all exported fields of the given
// struct (or pointer to struct) hold non-zero values. It is used to guard
// server startup against partially wired components.
func IsStructInitialized(v interface{}) error {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return errors.New("struct pointer is nil")
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return errors.Errorf("expected struct, got %s", val.Kind())
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		if val.Field(i).IsZero() {
			return errors.Errorf("struct field %q is not initialized", field.Name)
		}
	}

	return nil
}
