package validation

// NotNull fails with "<name> should not be null" when value is nil.
func NotNull[T any](value *T, name string) Result {
	if value == nil {
		return Error(name + " should not be null")
	}
	return Ok()
}

// NotEmpty fails with message when value is nil or "".
func NotEmpty(value *string, message string) Result {
	if value == nil || *value == "" {
		return Error(message)
	}
	return Ok()
}

// NotEmptySlice fails with message when the slice is nil or has no elements.
func NotEmptySlice[T any](value []T, message string) Result {
	if len(value) == 0 {
		return Error(message)
	}
	return Ok()
}

// NotNullOrEmpty fails with "<name> should have a value" when value is nil or "".
func NotNullOrEmpty(value *string, name string) Result {
	if value == nil || *value == "" {
		return Error(name + " should have a value")
	}
	return Ok()
}
