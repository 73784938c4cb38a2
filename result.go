package validation

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

const (
	okText     = "No errors"
	headerText = "Validation errors:"
)

// Result holds the messages produced by one or more checks.
// The zero value is an ok result. A Result is never modified after it is returned.
type Result struct {
	errs []string
}

// Func validates a single value.
type Func[T any] func(T) Result

// Ok returns a result without errors.
func Ok() Result {
	return Result{}
}

// Error returns a result holding exactly one message.
func Error(message string) Result {
	return Result{errs: []string{message}}
}

// Errorf returns a result holding one formatted message.
func Errorf(format string, args ...any) Result {
	return Error(fmt.Sprintf(format, args...))
}

// Merge combines results into one. Messages keep the order of the inputs;
// ok results contribute nothing. Merge with no arguments is Ok.
func Merge(results ...Result) Result {
	n := 0
	for _, r := range results {
		n += len(r.errs)
	}
	if n == 0 {
		return Result{}
	}

	errs := make([]string, 0, n)
	for _, r := range results {
		errs = append(errs, r.errs...)
	}
	return Result{errs: errs}
}

// HasError reports whether the result carries at least one message.
func (r Result) HasError() bool {
	return len(r.errs) > 0
}

// Errors returns a copy of the messages in the order they were collected.
func (r Result) Errors() []string {
	if len(r.errs) == 0 {
		return []string{}
	}
	return slices.Clone(r.errs)
}

// Len returns the number of messages.
func (r Result) Len() int {
	return len(r.errs)
}

// Check returns the result unchanged together with a *Failure when it has errors.
// The context describes the operation that was being validated.
//
// Example:
//
//	if _, err := validation.Merge(
//		validation.NotNullOrEmpty(req.Name, "name"),
//		validation.NotNull(req.Age, "age"),
//	).Check("create user"); err != nil {
//		return err
//	}
func (r Result) Check(context string) (Result, error) {
	if !r.HasError() {
		return r, nil
	}
	return r, &Failure{Context: context, Result: r}
}

// Err is Check without the result.
func (r Result) Err(context string) error {
	_, err := r.Check(context)
	return err
}

// Must panics with a *Failure when the result has errors.
// Use it where a failed check means the program cannot continue, e.g. on start-up.
func (r Result) Must(context string) Result {
	if _, err := r.Check(context); err != nil {
		panic(err)
	}
	return r
}

// String renders the result for logs and assertions:
// "No errors", or a "Validation errors:" header followed by one message per line.
func (r Result) String() string {
	if !r.HasError() {
		return okText
	}
	return headerText + "\n" + strings.Join(r.errs, "\n")
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	if !r.HasError() {
		return slog.GroupValue(slog.Bool("ok", true))
	}
	return slog.GroupValue(
		slog.Bool("ok", false),
		slog.Any("errors", r.Errors()),
	)
}
