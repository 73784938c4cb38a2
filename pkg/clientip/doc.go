// Package clientip resolves the client address of an HTTP request and keeps
// it in the request context for logging.
//
// Forwarding headers are checked in order (CF-Connecting-IP,
// DO-Connecting-IP, X-Forwarded-For, X-Real-IP) before falling back to
// RemoteAddr. Values that do not parse as an IP address are ignored.
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
