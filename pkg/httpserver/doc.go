// Package httpserver runs an http.Handler with graceful shutdown on context
// cancellation or SIGINT/SIGTERM.
//
// Settings come from Option values or from an env-tagged Config. They are
// checked together with the validation engine, so a bad configuration reports
// every problem at once instead of the first one:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv, err := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx, router)
//
// Start hooks run once the listener is bound; stop hooks run after shutdown.
package httpserver
