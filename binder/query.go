package binder

import "net/http"

// Query binds URL query parameters to fields tagged `query:"name"`.
// `query:"-"` skips a field; untagged fields use the lower-cased field name.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
