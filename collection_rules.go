package validation

// NotEmptyEach fails with message when collection is nil or empty.
// Otherwise every element is checked with fn and the results are merged in order.
func NotEmptyEach[T any](collection []T, fn Func[T], message string) Result {
	if len(collection) == 0 {
		return Error(message)
	}
	return each(collection, fn)
}

// NotNullEach fails with message only when collection is nil; an empty
// collection is ok. Elements are checked with fn and merged in order.
func NotNullEach[T any](collection []T, fn Func[T], message string) Result {
	if collection == nil {
		return Error(message)
	}
	return each(collection, fn)
}

// NotNullDeep fails with message when value is nil, otherwise returns fn(*value).
func NotNullDeep[T any](value *T, fn Func[T], message string) Result {
	if value == nil {
		return Error(message)
	}
	return Merge(fn(*value))
}

// Each checks every element with fn and merges the results in order.
// A nil or empty collection is ok.
func Each[T any](collection []T, fn Func[T]) Result {
	return each(collection, fn)
}

func each[T any](collection []T, fn Func[T]) Result {
	results := make([]Result, len(collection))
	for i, e := range collection {
		results[i] = fn(e)
	}
	return Merge(results...)
}
