// Package handler provides type-safe HTTP request handling on top of net/http.
//
// A HandlerFunc receives a bound request value and returns a Response. Wrap
// turns it into an http.HandlerFunc that binds the request, runs decorators,
// renders the response and routes every error through one ErrorHandler:
//
//	type Params struct {
//		Param1 *string                     `query:"param1"`
//		Param3 validation.Optional[string] `query:"param3"`
//	}
//
//	func getData(ctx handler.Context, p Params) handler.Response {
//		data, err := controller.GetSomeData(ctx, p)
//		if err != nil {
//			return handler.Fail(err)
//		}
//		return handler.JSON(data)
//	}
//
//	r.Get("/data", handler.Wrap(getData,
//		handler.WithBinders[handler.Context, Params](binder.Query()),
//		handler.WithErrorHandler[handler.Context, Params](handler.NewErrorHandler(log)),
//	))
//
// # Errors
//
// Errors are mapped to status codes in one place:
//
//   - a *validation.Failure anywhere in the chain becomes 422 with code
//     "validation_error", the failure context as the message and every
//     collected message under details.errors
//   - an HTTPError becomes its own status code and key
//   - anything else becomes 500 "internal_error"
//
// JSONError renders an error directly. Fail hands it to the route's
// ErrorHandler instead; NewErrorHandler logs it with the request id and then
// renders it with the same mapping.
package handler
