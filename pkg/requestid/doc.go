// Package requestid assigns every HTTP request an identifier, stores it in the
// request context, and echoes it in the X-Request-ID response header.
//
// An incoming X-Request-ID is reused when it is 1-128 characters of
// [a-zA-Z0-9_-]; anything else is replaced with a fresh UUID from
// github.com/google/uuid. LoggerExtractor plugs the id into pkg/logger.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
