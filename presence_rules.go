package validation

// IsPresent fails with "<name> should not be null" when the container is nil
// and with "<name> should be present" when it holds nothing.
func IsPresent[T any](value *Optional[T], name string) Result {
	return NotNullDeep(value, func(o Optional[T]) Result {
		if !o.IsPresent() {
			return Error(name + " should be present")
		}
		return Ok()
	}, name+" should not be null")
}

// IsPresentDeep fails with "<name> should be present" when value is None.
// Otherwise the result of fn on the held value is returned as is.
func IsPresentDeep[T any](value Optional[T], fn Func[T], name string) Result {
	v, ok := value.Get()
	if !ok {
		return Error(name + " should be present")
	}
	return Merge(fn(v))
}
