package rop

// Option is either a present T value or nothing.
type Option[T any] struct {
	v     T
	valid bool
}

// Some constructs a present Option.
func Some[T any](v T) Option[T] { return Option[T]{v: v, valid: true} }

// None constructs an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// FromOk lifts a comma-ok pair such as a map lookup or a type assertion.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr is Some(*p) for a non-nil p, None otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool { return o.valid }

func (o Option[T]) IsNone() bool { return !o.valid }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.v, o.valid }

// Unpack implements Container. An Option never fails.
func (o Option[T]) Unpack() (T, bool, error) { return o.v, o.valid, nil }

// Or returns the value if present, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}
