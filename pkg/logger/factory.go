package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/validation"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Environment names understood by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Option configures logger creation.
type Option func(*options)

type options struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the output format. Unknown formats make New panic.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithOutput sets the destination. A nil writer is rejected by New.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) { o.attrs = append(o.attrs, attrs...) }
}

// WithContextExtractors registers functions that add attributes from context.
// Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithContextValue adds the context value stored under key as attribute name.
func WithContextValue(name string, key any) Option {
	return func(o *options) {
		if name == "" || key == nil {
			return
		}
		o.extractors = append(o.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithEnvironment applies the defaults for env and tags records with the service name.
// "prod" and "stage" are accepted as short names; anything else is development.
func WithEnvironment(env, service string) Option {
	return func(o *options) {
		switch env {
		case EnvProduction, "prod":
			env, o.level, o.format = EnvProduction, slog.LevelInfo, FormatJSON
		case EnvStaging, "stage":
			env, o.level, o.format = EnvStaging, slog.LevelInfo, FormatJSON
		default:
			env, o.level, o.format = EnvDevelopment, slog.LevelDebug, FormatText
		}
		if service != "" {
			o.attrs = append(o.attrs, slog.String("service", service))
		}
		o.attrs = append(o.attrs, slog.String("env", env))
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

func (o *options) validate() validation.Result {
	format := string(o.format)
	var output *io.Writer
	if o.output != nil {
		output = &o.output
	}
	return validation.Merge(
		validation.NotNullAndMatches(&format, `json|text`, "log format"),
		validation.NotNull(output, "log output"),
	)
}

// New creates a logger. Defaults are JSON output at info level on stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.validate().Must("invalid logger options")

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}
	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(NewLogHandlerDecorator(handler, o.extractors...))
}
