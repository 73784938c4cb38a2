package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory bounds the memory used when parsing multipart forms.
const DefaultMaxMemory = 10 << 20

// Form binds urlencoded or multipart form fields to fields tagged `form:"name"`.
// Other content types yield ErrBinderNotApplicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var values map[string][]string
		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value
		default:
			return ErrBinderNotApplicable
		}
		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}
