package binder

import (
	"fmt"
	"net/http"
)

// Path binds router path parameters to fields tagged `path:"name"`.
// The extractor reads a parameter by name, e.g. chi.URLParam.
// Empty parameters leave the field untouched.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv, err := structValue(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPath, err)
		}

		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)
			if !field.CanSet() {
				continue
			}
			// Path parameters are only bound for explicitly tagged fields.
			if fieldType.Tag.Get("path") == "" {
				continue
			}
			name, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}

			value := extractor(r, name)
			if value == "" {
				continue
			}
			if err := setFieldValue(field, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrInvalidPath, name, err)
			}
		}
		return nil
	}
}
