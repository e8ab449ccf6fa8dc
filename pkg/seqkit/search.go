package seqkit

import "go.llib.dev/frameless/pkg/reflectkit"

// Every reports whether all elements satisfy the predicate.
// It stops at the first element that doesn't. An empty sequence satisfies any predicate.
func Every[T any, FN predFunc[T]](s Sequence[T], pred FN) (bool, error) {
	if s == nil {
		return false, errNilSequence()
	}
	match := toPredFunc[T](pred)
	for v := range s.Iter() {
		ok, err := match(v)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Some returns the first result that fn accepted, stopping the iteration there.
// Unlike a plain existence check, the caller receives the value fn produced.
func Some[R, T any, FN keepFunc[R, T]](s Sequence[T], fn FN) (R, bool, error) {
	var zero R
	if s == nil {
		return zero, false, errNilSequence()
	}
	try := toKeepFunc[R, T](fn)
	for v := range s.Iter() {
		r, ok, err := try(v)
		if err != nil {
			return zero, false, err
		}
		if ok {
			return r, true, nil
		}
	}
	return zero, false, nil
}

// Find returns the first element that satisfies the predicate,
// or the default value when none does. Without a default, the zero value is used.
//
// When the found element equals the default, the two outcomes can't be told apart.
func Find[T any, FN predFunc[T]](s Sequence[T], pred FN, def ...T) (T, error) {
	var fallback T
	if 0 < len(def) {
		fallback = def[0]
	}
	if s == nil {
		return fallback, errNilSequence()
	}
	match := toPredFunc[T](pred)
	for v := range s.Iter() {
		ok, err := match(v)
		if err != nil {
			return fallback, err
		}
		if ok {
			return v, nil
		}
	}
	return fallback, nil
}

// Count returns the number of elements that satisfy the predicate.
func Count[T any, FN predFunc[T]](s Sequence[T], pred FN) (int, error) {
	if s == nil {
		return 0, errNilSequence()
	}
	var (
		match = toPredFunc[T](pred)
		n     int
	)
	for v := range s.Iter() {
		ok, err := match(v)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// Contains reports whether the sequence holds an element equal to elt.
// The optional eq replaces the default structural equality.
func Contains[T any](s Sequence[T], elt T, eq ...func(a, b T) bool) bool {
	_, ok := Position(s, elt, eq...)
	return ok
}

// Position returns the index of the first element equal to elt.
func Position[T any](s Sequence[T], elt T, eq ...func(a, b T) bool) (int, bool) {
	if s == nil {
		return 0, false
	}
	var (
		equal = equality(eq)
		index int
	)
	for v := range s.Iter() {
		if equal(elt, v) {
			return index, true
		}
		index++
	}
	return 0, false
}

// Positions returns the index of every element equal to elt.
func Positions[T any](s Sequence[T], elt T, eq ...func(a, b T) bool) []int {
	if s == nil {
		return nil
	}
	var (
		equal     = equality(eq)
		positions []int
		index     int
	)
	for v := range s.Iter() {
		if equal(elt, v) {
			positions = append(positions, index)
		}
		index++
	}
	return positions
}

func equality[T any](eq []func(a, b T) bool) func(a, b T) bool {
	if 0 < len(eq) && eq[0] != nil {
		return eq[0]
	}
	return func(a, b T) bool { return reflectkit.Equal(a, b) }
}
