// Package seqkit implements generic sequence algorithms that work uniformly
// over heterogeneous containers such as arrays, linked lists and text.
//
// # Protocol
//
// A container only has to know how to iterate over its elements to become a Sequence.
// Every other capability (length, indexing, sub-ranges, copying and rebuilding)
// has a generic default that is derived from iteration,
// and a container can replace any combination of them with a faster version
// by implementing the matching optional interface (Lengther, Indexer, Slicer, Copier, Builder).
//
// The built-in kinds (Array, List and Text) implement all the optional interfaces,
// and algorithms like Sort or Reverse dispatch on them directly to use native implementations.
//
// # Result kinds
//
// Element-wise producers such as Map, Filter or Unique return a *List,
// while structure preserving operations like SubSeq, Take, Sort or Reverse
// return a sequence of the same kind as their input.
//
// # Concurrency
//
// Every operation runs synchronously on the caller's goroutine.
// A sequence must not be mutated while an algorithm consumes it.
package seqkit

import (
	"iter"
	"reflect"
	"slices"
)

// Sequence is the only capability a container must provide to be usable with seqkit.
type Sequence[T any] interface {
	// Iter yields the elements of the sequence in order.
	Iter() iter.Seq[T]
}

// Lengther is an optional Sequence capability to report the element count without a full traversal.
type Lengther interface {
	Len() int
}

// Indexer is an optional Sequence capability for direct element access.
// Lookup must report false for any index outside of [0, Len).
type Indexer[T any] interface {
	Lookup(index int) (T, bool)
}

// Slicer is an optional Sequence capability for extracting a sub-range.
// The received bounds are already canonicalised and checked, so 0 <= start <= end <= Len.
// The returned Sequence must not share mutable state with the receiver.
type Slicer[T any] interface {
	SubSeq(start, end int) Sequence[T]
}

// Copier is an optional Sequence capability to make an independent shallow copy.
type Copier[T any] interface {
	Copy() Sequence[T]
}

// Builder is an optional Sequence capability to create a new sequence of the same kind from canonical values.
// The Builder may take the ownership of the received slice.
// When a Sequence is not a Builder, the generic algorithms fall back to Array as their result kind.
type Builder[T any] interface {
	Build(vs []T) Sequence[T]
}

// IndexedSequence is a Sequence that knows its length and supports direct element access.
type IndexedSequence[T any] interface {
	Sequence[T]
	Lengther
	Indexer[T]
}

// Kinder is an optional Sequence capability to name the kind of the sequence.
type Kinder interface {
	Kind() Kind
}

// Of classifies a value as a Sequence[T].
//
// Accepted values are Sequence[T] implementations, []T slices,
// and string values when T is rune.
// Anything else yields ErrTypeMismatch.
func Of[T any](v any) (Sequence[T], error) {
	switch v := v.(type) {
	case Sequence[T]:
		return v, nil
	case []T:
		return Array[T](v), nil
	case string:
		if s, ok := any(Text(v)).(Sequence[T]); ok {
			return s, nil
		}
	}
	return nil, ErrTypeMismatch.F("%T is not a sequence of %s", v, reflect.TypeFor[T]())
}

// IsSequence reports whether the value can be used as a Sequence[T].
func IsSequence[T any](v any) bool {
	_, err := Of[T](v)
	return err == nil
}

// Len returns the number of elements in a sequence.
// A nil sequence has zero length.
func Len[T any](s Sequence[T]) int {
	switch s := s.(type) {
	case nil:
		return 0
	case Lengther:
		return s.Len()
	}
	var n int
	for range s.Iter() {
		n++
	}
	return n
}

// At returns the element at the given index.
// It fails with ErrIndexOutOfRange when the index is outside of [0, Len).
//
// At is the strict accessor; use Lookup when a missing element is an expected outcome.
func At[T any](s Sequence[T], index int) (T, error) {
	if s == nil {
		var zero T
		return zero, errNilSequence()
	}
	v, ok := Lookup(s, index)
	if !ok {
		return v, ErrIndexOutOfRange.F("index %d is out of range for length %d", index, Len(s))
	}
	return v, nil
}

// Lookup is the tolerant accessor: it returns the element at the given index,
// or the zero value and false when the index is out of range.
func Lookup[T any](s Sequence[T], index int) (T, bool) {
	var zero T
	if s == nil || index < 0 {
		return zero, false
	}
	if idx, ok := s.(Indexer[T]); ok {
		return idx.Lookup(index)
	}
	var i int
	for v := range s.Iter() {
		if i == index {
			return v, true
		}
		i++
	}
	return zero, false
}

// ForEach calls fn with every element in order.
// An error returned by fn interrupts the iteration and is returned as is.
func ForEach[T any, FN doFunc[T]](s Sequence[T], fn FN) error {
	if s == nil {
		return errNilSequence()
	}
	do := toDoFunc[T](fn)
	for v := range s.Iter() {
		if err := do(v); err != nil {
			return err
		}
	}
	return nil
}

// ForEachIndexed is like ForEach, but fn also receives the zero-based position of the element.
func ForEachIndexed[T any, FN doIndexedFunc[T]](s Sequence[T], fn FN) error {
	if s == nil {
		return errNilSequence()
	}
	var (
		do    = toDoIndexedFunc[T](fn)
		index int
	)
	for v := range s.Iter() {
		if err := do(v, index); err != nil {
			return err
		}
		index++
	}
	return nil
}

// IsEmpty reports whether the sequence has no elements.
func IsEmpty[T any](s Sequence[T]) bool {
	switch s := s.(type) {
	case nil:
		return true
	case Lengther:
		return s.Len() == 0
	}
	for range s.Iter() {
		return false
	}
	return true
}

// First returns the first element of the sequence.
func First[T any](s Sequence[T]) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	for v := range s.Iter() {
		return v, true
	}
	return zero, false
}

// Rest returns every element but the first, in the kind of the input.
func Rest[T any](s Sequence[T]) Sequence[T] {
	if s == nil {
		return nil
	}
	if IsEmpty(s) {
		return s
	}
	return subSeq(s, 1, Len(s))
}

// Values returns the elements in their canonical ordered form.
// The returned slice never shares memory with the sequence.
func Values[T any](s Sequence[T]) []T {
	switch src := any(s).(type) {
	case nil:
		return nil
	case Array[T]:
		return slices.Clone([]T(src))
	case *List[T]:
		return src.ToSlice()
	}
	return slices.Collect(s.Iter())
}

// Copy returns an independent shallow copy of the sequence.
func Copy[T any](s Sequence[T]) Sequence[T] {
	switch s := s.(type) {
	case nil:
		return nil
	case Copier[T]:
		return s.Copy()
	}
	return fromSame(s, Values(s))
}

// fromSame expresses canonical values in the kind of the reference sequence.
func fromSame[T any](ref Sequence[T], vs []T) Sequence[T] {
	if b, ok := ref.(Builder[T]); ok {
		return b.Build(vs)
	}
	return Array[T](vs)
}

// seqFunc turns an iterator function into a Sequence.
type seqFunc[T any] iter.Seq[T]

func (fn seqFunc[T]) Iter() iter.Seq[T] { return iter.Seq[T](fn) }

func chain[T any](ss ...Sequence[T]) Sequence[T] {
	return seqFunc[T](func(yield func(T) bool) {
		for _, s := range ss {
			for v := range s.Iter() {
				if !yield(v) {
					return
				}
			}
		}
	})
}
