package seqkit

import (
	"math/big"
	"net"
	"reflect"
	"slices"
	"time"

	"github.com/mitchellh/hashstructure/v2"
)

// UniqueHashThreshold is the input size above which membership checks under the default equality
// switch from pairwise comparison to hashing.
// It is a performance knob, the results are the same on both sides of it.
const UniqueHashThreshold = 100

// Unique returns the elements without duplicates, keeping the first occurrence of each, in input order.
//
// With the default structural equality and an input larger than UniqueHashThreshold,
// duplicates are found through hashing.
// A custom eq can't be hashed, so it is always compared pairwise,
// and so are element types whose equality is decided by an Equal, IsEqual or Cmp method,
// by the comparisons reflectkit registers (time.Time, net.IP, math/big),
// or by the dynamic type behind an interface.
// Equality registered for your own types with reflectkit.RegisterEqual is invisible here,
// pass it as eq instead.
func Unique[T any](s Sequence[T], eq ...func(a, b T) bool) *List[T] {
	var out List[T]
	if s == nil {
		return &out
	}
	seen := newMembership(Len(s), eq)
	for v := range s.Iter() {
		if seen.Has(v) {
			continue
		}
		seen.Add(v)
		out.Append(v)
	}
	return &out
}

// Union returns the distinct elements of both sequences, in first-seen order.
func Union[T any](a, b Sequence[T], eq ...func(a, b T) bool) *List[T] {
	var ss []Sequence[T]
	for _, s := range []Sequence[T]{a, b} {
		if s != nil {
			ss = append(ss, s)
		}
	}
	return Unique(chain(ss...), eq...)
}

// Intersection returns the elements of a that are also present in b, in the order of a.
func Intersection[T any](a, b Sequence[T], eq ...func(a, b T) bool) *List[T] {
	return keepByMembership(a, b, eq, true)
}

// Difference returns the elements of a that are not present in b, in the order of a.
func Difference[T any](a, b Sequence[T], eq ...func(a, b T) bool) *List[T] {
	return keepByMembership(a, b, eq, false)
}

func keepByMembership[T any](a, b Sequence[T], eq []func(a, b T) bool, want bool) *List[T] {
	var out List[T]
	if a == nil {
		return &out
	}
	index := newMembership(Len(b), eq)
	if b != nil {
		for v := range b.Iter() {
			index.Add(v)
		}
	}
	for v := range a.Iter() {
		if index.Has(v) == want {
			out.Append(v)
		}
	}
	return &out
}

// SetEqual reports whether both sequences hold the same elements, regardless of order and duplicates.
func SetEqual[T any](a, b Sequence[T], eq ...func(a, b T) bool) bool {
	return IsEmpty[T](Difference(a, b, eq...)) && IsEmpty[T](Difference(b, a, eq...))
}

// membership is the scratch structure behind the set operations.
// It lives for the duration of a single call.
type membership[T any] struct {
	equal   func(a, b T) bool
	linear  []T
	keys    map[any]struct{}
	buckets map[uint64][]T
}

func newMembership[T any](size int, eq []func(a, b T) bool) *membership[T] {
	m := &membership[T]{equal: equality(eq)}
	if 0 < len(eq) && eq[0] != nil || size <= UniqueHashThreshold {
		return m
	}
	typ := reflect.TypeFor[T]()
	if !hashable(typ, make(map[reflect.Type]bool)) {
		return m
	}
	if isScalar(typ) {
		m.keys = make(map[any]struct{}, size)
	} else {
		m.buckets = make(map[uint64][]T)
	}
	return m
}

func (m *membership[T]) Has(v T) bool {
	switch {
	case m.keys != nil:
		_, ok := m.keys[any(v)]
		return ok
	case m.buckets != nil:
		return slices.ContainsFunc(m.buckets[hashOf(v)], func(o T) bool { return m.equal(o, v) })
	default:
		return slices.ContainsFunc(m.linear, func(o T) bool { return m.equal(o, v) })
	}
}

func (m *membership[T]) Add(v T) {
	switch {
	case m.keys != nil:
		m.keys[any(v)] = struct{}{}
	case m.buckets != nil:
		h := hashOf(v)
		m.buckets[h] = append(m.buckets[h], v)
	default:
		m.linear = append(m.linear, v)
	}
}

// hashOf places values that can't be hashed into a shared bucket,
// where they are still told apart by equality.
func hashOf(v any) uint64 {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}

// isScalar reports the types where == agrees with structural equality,
// so values can be used directly as map keys.
func isScalar(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// registeredEquality lists the types that reflectkit.Equal compares with a registered function.
var registeredEquality = []reflect.Type{
	reflect.TypeFor[time.Time](),
	reflect.TypeFor[net.IP](),
	reflect.TypeFor[big.Int](),
	reflect.TypeFor[big.Rat](),
	reflect.TypeFor[big.Float](),
}

var hashableInterface = reflect.TypeFor[hashstructure.Hashable]()

// hashable reports whether equal values of typ always hash the same,
// which holds when no part of typ has an equality of its own.
func hashable(typ reflect.Type, seen map[reflect.Type]bool) bool {
	if ok, visited := seen[typ]; visited {
		return ok
	}
	seen[typ] = true // recursive types are decided by their other parts
	ok := hashableType(typ, seen)
	seen[typ] = ok
	return ok
}

func hashableType(typ reflect.Type, seen map[reflect.Type]bool) bool {
	if slices.Contains(registeredEquality, typ) || hasEqualityMethod(typ) {
		return false
	}
	switch typ.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return hashable(typ.Elem(), seen)
	case reflect.Map:
		return hashable(typ.Key(), seen) && hashable(typ.Elem(), seen)
	case reflect.Struct:
		for i := range typ.NumField() {
			if !hashable(typ.Field(i).Type, seen) {
				return false
			}
		}
		return true
	default:
		// floats (-0 == +0), interfaces, funcs and channels
		return false
	}
}

func hasEqualityMethod(typ reflect.Type) bool {
	for _, t := range []reflect.Type{typ, reflect.PointerTo(typ)} {
		if t.Implements(hashableInterface) {
			return true
		}
		for _, name := range []string{"Equal", "IsEqual", "Cmp", "Compare"} {
			if _, ok := t.MethodByName(name); ok {
				return true
			}
		}
	}
	return false
}
