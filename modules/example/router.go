package example

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/validation/binder"
	"github.com/dmitrymomot/validation/handler"
	"github.com/dmitrymomot/validation/pkg/httpserver"
)

// Router mounts GET /data, GET /other-data and GET /health.
func Router(c *Controller, log *slog.Logger) chi.Router {
	errorHandler := handler.NewErrorHandler(log)

	r := chi.NewRouter()
	r.Get("/data", handler.Wrap(
		func(ctx handler.Context, p Params) handler.Response {
			data, err := c.GetSomeData(ctx, p)
			if err != nil {
				return handler.Fail(err)
			}
			return handler.JSON(data)
		},
		handler.WithBinders[handler.Context, Params](binder.Query()),
		handler.WithErrorHandler[handler.Context, Params](errorHandler),
	))
	r.Get("/other-data", handler.Wrap(
		func(ctx handler.Context, p Params) handler.Response {
			return handler.JSON(c.GetSomeOtherData(ctx, p))
		},
		handler.WithBinders[handler.Context, Params](binder.Query()),
		handler.WithErrorHandler[handler.Context, Params](errorHandler),
	))
	r.Get("/health", httpserver.HealthCheckHandler(log))

	return r
}
