package seqkit

import (
	"iter"
	"reflect"
)

// Boxer is an optional Sequence capability to provide a type-erased view of the sequence.
// Boxing lets code that doesn't know the element type at compile time,
// like the destructure package, walk nested sequences.
type Boxer interface {
	Box() Sequence[any]
}

// Box returns a type-erased Sequence view of a value.
//
// Recognised values are Sequence[any] implementations, Boxer implementations,
// strings, any Go slice or array, and any value with an Iter method returning an iter.Seq.
// Sub-ranges taken from a boxed sequence keep the kind of the original value,
// which can be recovered with Unbox.
// Values that only provide Iter have no kind to keep, their sub-ranges are slices.
func Box(v any) (Sequence[any], bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case Sequence[any]:
		return v, true
	case Boxer:
		return v.Box(), true
	case string:
		return Text(v).Box(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectSeq{rv: rv}, true
	default:
		return boxIter(rv)
	}
}

// Unbox returns the value behind a boxed sequence.
// Sequences that were not produced by Box are returned as is.
func Unbox(s Sequence[any]) any {
	if u, ok := s.(interface{ Unbox() any }); ok {
		return u.Unbox()
	}
	return s
}

type boxed[T any] struct{ seq Sequence[T] }

func (b boxed[T]) Iter() iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range b.seq.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}

func (b boxed[T]) Len() int { return Len(b.seq) }

func (b boxed[T]) Lookup(index int) (any, bool) { return Lookup(b.seq, index) }

func (b boxed[T]) SubSeq(start, end int) Sequence[any] {
	return boxed[T]{seq: subSeq(b.seq, start, end)}
}

func (b boxed[T]) Kind() Kind { return KindOf(b.seq) }

func (b boxed[T]) Unbox() any { return b.seq }

// reflectSeq boxes plain Go slices and arrays.
type reflectSeq struct{ rv reflect.Value }

func (s reflectSeq) Iter() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := 0; i < s.rv.Len(); i++ {
			if !yield(s.rv.Index(i).Interface()) {
				return
			}
		}
	}
}

func (s reflectSeq) Len() int { return s.rv.Len() }

func (s reflectSeq) Lookup(index int) (any, bool) {
	if index < 0 || s.rv.Len() <= index {
		return nil, false
	}
	return s.rv.Index(index).Interface(), true
}

// SubSeq copies the range into a new slice of the same element type.
// Arrays become slices, since their length is part of their type.
func (s reflectSeq) SubSeq(start, end int) Sequence[any] {
	var typ = s.rv.Type()
	if typ.Kind() == reflect.Array {
		typ = reflect.SliceOf(typ.Elem())
	}
	out := reflect.MakeSlice(typ, 0, end-start)
	for i := start; i < end; i++ {
		out = reflect.Append(out, s.rv.Index(i))
	}
	return reflectSeq{rv: out}
}

func (s reflectSeq) Kind() Kind { return KindArray }

func (s reflectSeq) Unbox() any { return s.rv.Interface() }

var boolType = reflect.TypeFor[bool]()

// iterSeq boxes extension sequences that implement nothing but Iter.
type iterSeq struct {
	src   reflect.Value
	iter  reflect.Value
	yield reflect.Type
}

func boxIter(rv reflect.Value) (Sequence[any], bool) {
	if !rv.IsValid() {
		return nil, false
	}
	m := rv.MethodByName("Iter")
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return nil, false
	}
	seqType := mt.Out(0)
	if seqType.Kind() != reflect.Func || seqType.NumIn() != 1 || seqType.NumOut() != 0 {
		return nil, false
	}
	yieldType := seqType.In(0)
	if yieldType.Kind() != reflect.Func || yieldType.NumIn() != 1 ||
		yieldType.NumOut() != 1 || yieldType.Out(0) != boolType {
		return nil, false
	}
	return iterSeq{src: rv, iter: m, yield: yieldType}, true
}

func (s iterSeq) each(fn func(v reflect.Value) bool) {
	seq := s.iter.Call(nil)[0]
	if seq.IsNil() {
		return
	}
	yield := reflect.MakeFunc(s.yield, func(args []reflect.Value) []reflect.Value {
		return []reflect.Value{reflect.ValueOf(fn(args[0]))}
	})
	seq.Call([]reflect.Value{yield})
}

func (s iterSeq) Iter() iter.Seq[any] {
	return func(yield func(any) bool) {
		s.each(func(v reflect.Value) bool { return yield(v.Interface()) })
	}
}

func (s iterSeq) Len() int {
	var n int
	s.each(func(reflect.Value) bool {
		n++
		return true
	})
	return n
}

func (s iterSeq) Lookup(index int) (any, bool) {
	var (
		out   any
		found bool
		i     int
	)
	if index < 0 {
		return nil, false
	}
	s.each(func(v reflect.Value) bool {
		if i == index {
			out, found = v.Interface(), true
			return false
		}
		i++
		return true
	})
	return out, found
}

// SubSeq collects the range into a slice of the element type.
func (s iterSeq) SubSeq(start, end int) Sequence[any] {
	var (
		out = reflect.MakeSlice(reflect.SliceOf(s.yield.In(0)), 0, end-start)
		i   int
	)
	s.each(func(v reflect.Value) bool {
		if end <= i {
			return false
		}
		if start <= i {
			out = reflect.Append(out, v)
		}
		i++
		return true
	})
	return reflectSeq{rv: out}
}

func (s iterSeq) Kind() Kind { return KindOther }

func (s iterSeq) Unbox() any { return s.src.Interface() }
