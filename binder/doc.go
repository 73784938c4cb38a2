// Package binder fills request structs from query strings, forms, JSON
// bodies and router path parameters.
//
// Binders keep absence visible so the validation package can tell a missing
// parameter from an empty one:
//
//   - a *T field stays nil when the parameter is missing
//   - a []T field stays nil when the parameter is missing
//   - a validation.Optional[T] field stays None when the parameter is missing
//
// Any field whose pointer implements encoding.TextUnmarshaler is filled
// through UnmarshalText, which is how Optional, time.Time and uuid.UUID
// fields are supported.
//
//	type Params struct {
//		Param1 *string                     `query:"param1"`
//		Param3 validation.Optional[string] `query:"param3"`
//		Items  []string                    `query:"items"`
//	}
//
//	r.Get("/data", handler.Wrap(h, handler.WithBinders[handler.Context, Params](binder.Query())))
//
// Form and JSON return ErrBinderNotApplicable when the request content type
// does not match, so several binders can be chained on one route.
package binder
