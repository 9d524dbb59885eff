// Package container provides small generic value containers.
package container

import "fmt"

// Option holds a value that may be absent. The zero value is None.
type Option[T any] struct {
	v   T
	set bool
}

func (opt Option[T]) String() string {
	if !opt.set {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", opt.v)
}

func None[T any]() Option[T] { return Option[T]{} }

func Some[T any](v T) Option[T] {
	return Option[T]{v: v, set: true}
}

func (opt Option[T]) Get() (T, bool) {
	return opt.v, opt.set
}

func (opt Option[T]) GetOr(alt T) T {
	if opt.set {
		return opt.v
	}
	return alt
}

func (opt Option[T]) Set() bool {
	return opt.set
}

func (opt Option[T]) MustGet() T {
	if !opt.set {
		panic("called MustGet on unset Option")
	}
	return opt.v
}

// Is reports whether opt holds a value equal to v.
func Is[T comparable](opt Option[T], v T) bool {
	return opt.set && opt.v == v
}
