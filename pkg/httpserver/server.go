package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/pkg/logger"
)

type config struct {
	Config
	server     *http.Server
	logger     *slog.Logger
	startHooks []func(*slog.Logger)
	stopHooks  []func(*slog.Logger)
}

func (c *config) validate() validation.Result {
	return validation.Merge(
		c.Config.Validate(),
		hooks(c.startHooks, "start hook"),
		hooks(c.stopHooks, "stop hook"),
	)
}

func hooks(list []func(*slog.Logger), name string) validation.Result {
	return validation.Each(list, func(h func(*slog.Logger)) validation.Result {
		if h == nil {
			return validation.Error(name + " should not be nil")
		}
		return validation.Ok()
	})
}

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	cfg  *config
	srv  *http.Server
	once sync.Once
	mu   sync.Mutex
}

// New returns a configured Server. It panics with a *validation.Failure
// when the options are invalid; use NewFromConfig to get an error instead.
func New(opts ...Option) *Server {
	s, err := build(opts)
	if err != nil {
		panic(err)
	}
	return s
}

func build(opts []Option) (*Server, error) {
	cfg := &config{
		Config: Config{Addr: ":8080", ShutdownTimeout: 5 * time.Second},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate().Err("http server"); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return &Server{cfg: cfg}, nil
}

// Run starts the HTTP server and blocks until ctx is done, a termination
// signal arrives, or the server fails. Failures to start wrap ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}

	cfg := s.cfg
	srv := cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = cfg.Addr
	}
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = cfg.ReadTimeout
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = cfg.WriteTimeout
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = cfg.IdleTimeout
	}
	srv.Handler = handler
	s.srv = srv
	s.mu.Unlock()

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		s.mu.Lock()
		s.srv = nil
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}

	cfg.logger.Info("http server started", slog.String("addr", ln.Addr().String()), logger.Component("httpserver"))
	for _, h := range cfg.startHooks {
		h(cfg.logger)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		_ = s.Shutdown(context.Background())
		runErr = <-errCh
	case sig := <-stop:
		cfg.logger.Info("shutdown signal received", slog.String("signal", sig.String()), logger.Component("httpserver"))
		_ = s.Shutdown(context.Background())
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

// Shutdown stops the server gracefully. It is safe to call more than once;
// only the first call has an effect.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		for _, h := range s.cfg.stopHooks {
			h(s.cfg.logger)
		}
		s.cfg.logger.Info("http server stopped", logger.Component("httpserver"), logger.Error(err))
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, fmt.Errorf("shutdown: %w", err))
	}
	return nil
}
