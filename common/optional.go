package common

// Optional is a single value container that can either have a value or not.
type Optional[T any] struct {
	inner  T
	isSome bool
}

// None creates an Optional with no value.
func None[T any]() Optional[T] {
	return Optional[T]{isSome: false}
}

// Some create an Optional containing the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value, true}
}

// IsSome returns true if the optional contains a value.
func (self Optional[T]) IsSome() bool {
	return self.isSome
}

// Unwrap returns the contained value or panics if the Optional is empty.
func (self Optional[T]) Unwrap() T {
	if !self.isSome {
		panic("tried to unwrap empty optional")
	}
	return self.inner
}

// Get returns the contained value and whether there is one.
func (self Optional[T]) Get() (T, bool) {
	return self.inner, self.isSome
}

// UnwrapOr returns the contained value or the given fallback.
func (self Optional[T]) UnwrapOr(fallback T) T {
	if self.isSome {
		return self.inner
	}
	return fallback
}

// Take takes the value out of the Optional, leaving the original without a value.
func (self *Optional[T]) Take() Optional[T] {
	taken := *self
	*self = None[T]()
	return taken
}

// Then calls the given function with the contained value, if there is one.
func (self Optional[T]) Then(f func(T)) {
	if self.isSome {
		f(self.inner)
	}
}
