package binder

import "errors"

var (
	// ErrBinderNotApplicable is returned when a request carries nothing the binder handles.
	ErrBinderNotApplicable = errors.New("binder not applicable")
	ErrInvalidTarget       = errors.New("bind target must be a non-nil pointer to struct")
	ErrInvalidJSON         = errors.New("invalid JSON")
	ErrInvalidForm         = errors.New("invalid form data")
	ErrInvalidQuery        = errors.New("invalid query parameter")
	ErrInvalidPath         = errors.New("invalid path parameter")
)
