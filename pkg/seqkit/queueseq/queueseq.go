// Package queueseq plugs a ring-buffer queue into seqkit as a user-defined sequence kind.
//
// Ring only implements the capabilities the queue supports natively
// (iteration, length, indexing, building and boxing),
// so sub-ranges, copies, sorting and the rest go through the generic seqkit defaults.
package queueseq

import (
	"iter"

	"github.com/eapache/queue"

	"go.llib.dev/seqkit/pkg/seqkit"
)

// Kind is the seqkit.Kind reported by Ring.
const Kind seqkit.Kind = "ring"

// Ring is a FIFO queue of T values backed by a growable ring buffer.
// The zero value is ready to use.
type Ring[T any] struct {
	q *queue.Queue
}

func New[T any](vs ...T) *Ring[T] {
	r := &Ring[T]{}
	for _, v := range vs {
		r.Add(v)
	}
	return r
}

func (r *Ring[T]) ensure() *queue.Queue {
	if r.q == nil {
		r.q = queue.New()
	}
	return r.q
}

// Add puts an element at the end of the queue.
func (r *Ring[T]) Add(v T) { r.ensure().Add(v) }

// Remove takes the element from the head of the queue.
func (r *Ring[T]) Remove() (T, bool) {
	if r.Len() == 0 {
		var zero T
		return zero, false
	}
	v, _ := r.ensure().Remove().(T)
	return v, true
}

// Peek returns the element at the head of the queue without removing it.
func (r *Ring[T]) Peek() (T, bool) {
	return r.Lookup(0)
}

func (r *Ring[T]) Len() int {
	if r == nil || r.q == nil {
		return 0
	}
	return r.q.Length()
}

func (r *Ring[T]) Lookup(index int) (T, bool) {
	if index < 0 || r.Len() <= index {
		var zero T
		return zero, false
	}
	v, _ := r.q.Get(index).(T)
	return v, true
}

func (r *Ring[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.Len(); i++ {
			v, _ := r.q.Get(i).(T)
			if !yield(v) {
				return
			}
		}
	}
}

func (r *Ring[T]) Build(vs []T) seqkit.Sequence[T] { return New(vs...) }

func (r *Ring[T]) Kind() seqkit.Kind { return Kind }

func (r *Ring[T]) Box() seqkit.Sequence[any] { return boxed[T]{ring: r} }

type boxed[T any] struct{ ring *Ring[T] }

func (b boxed[T]) Iter() iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range b.ring.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

func (b boxed[T]) Len() int { return b.ring.Len() }

func (b boxed[T]) Lookup(index int) (any, bool) { return b.ring.Lookup(index) }

func (b boxed[T]) SubSeq(start, end int) seqkit.Sequence[any] {
	sub, err := seqkit.SubSeq[T](b.ring, start, end)
	if err != nil {
		panic(err)
	}
	return boxed[T]{ring: sub.(*Ring[T])}
}

func (b boxed[T]) Kind() seqkit.Kind { return Kind }

func (b boxed[T]) Unbox() any { return b.ring }
