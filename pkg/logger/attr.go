package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/validation"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err gives an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Validation records a validation result under the key "validation".
func Validation(r validation.Result) slog.Attr {
	return slog.Any("validation", r)
}

// ValidationFailure records the context and messages of the failure in err's chain.
// If err holds no failure, it returns an empty Attr.
func ValidationFailure(err error) slog.Attr {
	f, ok := validation.AsFailure(err)
	if !ok {
		return slog.Attr{}
	}
	return Group("validation",
		slog.String("context", f.Context),
		slog.Any("errors", f.Result.Errors()),
	)
}

// RequestID records the request identifier under the key "request_id".
// An empty id gives an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
