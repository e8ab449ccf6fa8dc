package seqkit

import (
	"iter"
	"slices"
)

// Array is the growable contiguous sequence kind.
type Array[T any] []T

// ArrayOf is a convenience constructor that helps type inference.
func ArrayOf[T any](vs ...T) Array[T] { return Array[T](vs) }

func (a Array[T]) Iter() iter.Seq[T] { return slices.Values(a) }

func (a Array[T]) Len() int { return len(a) }

func (a Array[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(a) <= index {
		var zero T
		return zero, false
	}
	return a[index], true
}

func (a Array[T]) SubSeq(start, end int) Sequence[T] {
	return Array[T](slices.Clone(a[start:end]))
}

func (a Array[T]) Copy() Sequence[T] { return Array[T](slices.Clone(a)) }

func (a Array[T]) Build(vs []T) Sequence[T] { return Array[T](vs) }

func (a Array[T]) Kind() Kind { return KindArray }

func (a Array[T]) Box() Sequence[any] { return boxed[T]{seq: a} }
