package credentials

// Result is the outcome of one resolution source. The zero value is
// NotFound, which keeps an empty string from being mistaken for a value.
type Result[T any] struct {
	value T
	found bool
}

// Found wraps a resolved value.
func Found[T any](v T) Result[T] {
	return Result[T]{value: v, found: true}
}

// NotFound reports that the source had nothing usable.
func NotFound[T any]() Result[T] {
	return Result[T]{}
}

// Get returns the value and whether it was found.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.found
}
