// Package example shows the two ways a service consumes validation results.
//
// GetSomeData takes the hard path: every check runs, and if any fails the
// merged result is returned as a *validation.Failure, which the HTTP layer
// renders as 422 with all messages. GetSomeOtherData takes the soft path:
// failures are logged and the request carries on.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//	r.Mount("/", example.Router(example.NewController(log), log))
package example
