// Package validation runs many independent checks against input data and
// collects every failure message instead of stopping at the first one.
//
// The package is built around a single value type, Result, and a family of
// small validator functions that each produce one. Results are combined with
// Merge and either inspected (HasError, Errors, String) or turned into an
// error at a boundary of the caller's choosing (Check, Err, Must).
//
// # Architecture
//
// Result is immutable once returned; Merge always builds a new message slice,
// so results can be shared freely between goroutines. Validators are pure
// functions with no hidden state. The only package-level state is a cache of
// compiled regular expressions that is safe for concurrent use.
//
// Absence is modelled with Go's own types:
//
//   - *T is absent when nil (NotNull, NotNullOrEmpty, NotNullAndMatches, ...)
//   - []T is absent when nil; a non-nil empty slice is present but empty
//   - Optional[T] is a tagged present/absent value; a nil *Optional[T] is a
//     missing container, which IsPresent reports separately from None
//
// Validators that recurse into a value take a Func[T] and hoist its messages
// into the parent result verbatim:
//
//   - NotNullDeep   - check a non-nil value with fn
//   - NotNullEach   - check each element of a non-nil slice with fn
//   - NotEmptyEach  - check each element of a non-empty slice with fn
//   - IsPresentDeep - check the value held by an Optional with fn
//
// Element absence inside a collection is only reported when fn checks for it.
//
// # Usage
//
//	r := validation.Merge(
//	    validation.NotNullOrEmpty(req.Name, "name"),
//	    validation.NotNull(req.Age, "age"),
//	    validation.IsPresentDeep(req.Code, func(code string) validation.Result {
//	        return validation.EmptyOrMatches(&code, `\d{2}`, "code")
//	    }, "code"),
//	    validation.NotEmptyEach(req.Tags, func(tag string) validation.Result {
//	        return validation.NotEmpty(&tag, "tag should not be empty")
//	    }, "tags should not be empty"),
//	)
//
//	// Soft failure: inspect and log.
//	if r.HasError() {
//	    log.Info("request has problems", logger.Validation(r))
//	}
//
//	// Hard failure: convert to an error once.
//	if err := r.Err("create user"); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Validators never panic and never return error values. Check and Err return
// a *Failure that carries the caller's context and the full Result; use
// AsFailure or ExtractResult to get the itemised messages back, and
// errors.Is(err, ErrValidationFailed) to classify it.
//
// # Output Format
//
// Result.String renders "No errors" for an ok result, or the header
// "Validation errors:" followed by one message per line.
package validation
