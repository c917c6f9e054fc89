/*
Package maybe provides an option type for values which may be absent.

Clients use it for optional fields of the document and stylesheet models,
e.g. the id of an element or the tag name of a selector. The zero value of
Maybe is Nothing, so optional struct fields need no initialization.

Values are inspected either directly

	if id, ok := m.Get(); ok { … }

or by pattern matching:

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		…
	case m.Nothing():
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package maybe

import "fmt"

// Maybe is either Just a value of type T or Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing returns an empty option.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the wrapped value and true, or the zero value of T and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// IsNothing is true for empty options.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// WithDefault returns the wrapped value or def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the wrapped value, if any.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Equal compares two options of a comparable type.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.tag != b.tag {
		return false
	}
	return !a.tag || a.value == b.value
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Match and used as the tag of a switch statement.
// A case matches if its method returns the matcher itself.
type Matcher[T any] struct {
	m Maybe[T]
}

// Match starts pattern matching on m.
func (m Maybe[T]) Match() *Matcher[T] {
	return &Matcher[T]{m: m}
}

// Just matches a present value and stores it in v (if v is non-nil).
func (mm *Matcher[T]) Just(v *T) *Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

// Nothing matches an absent value.
func (mm *Matcher[T]) Nothing() *Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
