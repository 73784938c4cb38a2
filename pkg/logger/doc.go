// Package logger builds *slog.Logger instances for services that use the
// validation engine, with helpers that keep attribute names consistent.
//
// New applies a list of Option values, checks the resulting settings with
// the validation package, and wraps the chosen slog handler in a decorator
// that copies request-scoped values (such as a request id) from the
// context.Context into every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "example"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	if r := validation.Merge(checks...); r.HasError() {
//	    log.InfoContext(ctx, "some parameters are not ok", logger.Validation(r))
//	}
//
// # Configuration
//
//   - WithEnvironment - development (text, debug) or staging/production (json, info)
//   - WithFormat / WithLevel / WithOutput - explicit overrides
//   - WithAttr - static attributes on every record
//   - WithContextExtractors / WithContextValue - attributes pulled from context
//
// Invalid settings are a programming error: New panics with a
// *validation.Failure listing every problem it found.
package logger
