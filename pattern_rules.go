package validation

import (
	"regexp"
	"sync"
)

// patterns caches compiled whole-string patterns keyed by the caller's source.
// A nil entry records a pattern that failed to compile.
var patterns sync.Map

func compilePattern(pattern string) *regexp.Regexp {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		re = nil
	}
	actual, _ := patterns.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}

// matches reports whether the whole of value matches pattern.
// An invalid pattern matches nothing.
func matches(pattern, value string) bool {
	re := compilePattern(pattern)
	return re != nil && re.MatchString(value)
}

func mismatch(name, pattern string) Result {
	return Error(name + " should match " + pattern)
}

// NotNullAndMatches fails with "<name> should match <pattern>" when value is nil
// or does not match pattern as a whole.
func NotNullAndMatches(value *string, pattern, name string) Result {
	if value == nil || !matches(pattern, *value) {
		return mismatch(name, pattern)
	}
	return Ok()
}

// EmptyOrMatches accepts nil, "" or a whole-string match of pattern.
// Anything else fails with "<name> should match <pattern>".
func EmptyOrMatches(value *string, pattern, name string) Result {
	if value == nil || *value == "" || matches(pattern, *value) {
		return Ok()
	}
	return mismatch(name, pattern)
}

// EmptyOrMatchesOptional is EmptyOrMatches for an Optional string: None is accepted.
func EmptyOrMatchesOptional(value Optional[string], pattern, name string) Result {
	v, ok := value.Get()
	if !ok || matches(pattern, v) {
		return Ok()
	}
	return mismatch(name, pattern)
}
