// Package seqkitcontract holds the behavioural contract of seqkit.Sequence implementations.
//
// A new container kind can prove that it works with every seqkit algorithm
// by running the contract in its own tests:
//
//	seqkitcontract.Sequence(func(tb testing.TB, vs []int) seqkit.Sequence[int] {
//		return mykind.From(vs)
//	}, func(tb testing.TB) int {
//		return testcase.ToT(&tb).Random.Int()
//	}).Test(t)
package seqkitcontract

import (
	"fmt"
	"reflect"
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/seqkit/pkg/seqkit"
)

// Sequence returns the contract for a Sequence[T] implementation.
//
// mk must return a sequence holding exactly the given values in the given order,
// and elem must produce arbitrary element values.
func Sequence[T any](mk func(tb testing.TB, vs []T) seqkit.Sequence[T], elem func(tb testing.TB) T) contract.Contract {
	s := testcase.NewSpec(nil)

	values := testcase.Let(s, func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(3, 12), func() T { return elem(t) })
	})
	subject := testcase.Let(s, func(t *testcase.T) seqkit.Sequence[T] {
		return mk(t, values.Get(t))
	})

	s.Test("iteration yields the values in order", func(t *testcase.T) {
		assert.Equal(t, values.Get(t), seqkit.Values(subject.Get(t)))
	})

	s.Test("iteration can be stopped early", func(t *testcase.T) {
		var n int
		for range subject.Get(t).Iter() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	s.Test("length matches the number of values", func(t *testcase.T) {
		assert.Equal(t, len(values.Get(t)), seqkit.Len(subject.Get(t)))
		assert.False(t, seqkit.IsEmpty(subject.Get(t)))
	})

	s.Test("strict and tolerant element access agree within bounds", func(t *testcase.T) {
		for i, exp := range values.Get(t) {
			got, err := seqkit.At(subject.Get(t), i)
			assert.NoError(t, err)
			assert.Equal(t, exp, got)

			got, ok := seqkit.Lookup(subject.Get(t), i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("element access out of bounds", func(t *testcase.T) {
		length := len(values.Get(t))
		for _, index := range []int{-1, length, length + t.Random.IntBetween(1, 42)} {
			_, err := seqkit.At(subject.Get(t), index)
			assert.ErrorIs(t, err, seqkit.ErrIndexOutOfRange)

			_, ok := seqkit.Lookup(subject.Get(t), index)
			assert.False(t, ok)
		}
	})

	s.Test("sub-range keeps the kind and the selected values", func(t *testcase.T) {
		var (
			vs    = values.Get(t)
			start = t.Random.IntBetween(0, len(vs))
			end   = t.Random.IntBetween(start, len(vs))
		)
		sub, err := seqkit.SubSeq(subject.Get(t), start, end)
		assert.NoError(t, err)
		assert.Equal(t, seqkit.KindOf(subject.Get(t)), seqkit.KindOf(sub))
		assert.Equal(t, len(vs[start:end]), seqkit.Len(sub))
		for i, exp := range vs[start:end] {
			got, err := seqkit.At(sub, i)
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("sub-range beyond the length fails", func(t *testcase.T) {
		length := len(values.Get(t))
		_, err := seqkit.SubSeq(subject.Get(t), length+1, length+2)
		assert.ErrorIs(t, err, seqkit.ErrIndexOutOfRange)
	})

	s.Test("copy is independent of the original", func(t *testcase.T) {
		cp := seqkit.Copy(subject.Get(t))
		assert.Equal(t, values.Get(t), seqkit.Values(cp))
		assert.Equal(t, seqkit.KindOf(subject.Get(t)), seqkit.KindOf(cp))
		if cp, ok := cp.(interface{ Append(...T) }); ok {
			cp.Append(elem(t))
			assert.Equal(t, len(values.Get(t)), seqkit.Len(subject.Get(t)))
		}
	})

	s.Test("reverse keeps the kind", func(t *testcase.T) {
		rev := seqkit.Reverse(subject.Get(t))
		assert.Equal(t, seqkit.KindOf(subject.Get(t)), seqkit.KindOf(rev))
		assert.Equal(t, values.Get(t), seqkit.Values(seqkit.Reverse(rev)))
	})

	s.Test("the sequence can be boxed", func(t *testcase.T) {
		boxed, ok := seqkit.Box(subject.Get(t))
		assert.True(t, ok)
		assert.Equal(t, len(values.Get(t)), seqkit.Len(boxed))
		for i, exp := range values.Get(t) {
			got, ok := seqkit.Lookup(boxed, i)
			assert.True(t, ok)
			assert.Equal[any](t, exp, got)
		}
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%s]", reflect.TypeFor[T]()))
}
