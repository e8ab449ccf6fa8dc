package seqkit

import "slices"

// Sort returns a stably sorted copy of the sequence, in the kind of the input.
// The input sequence is left untouched.
//
// When cmp fails, the sort is abandoned and the error is returned.
func Sort[T any, FN cmpFunc[T]](s Sequence[T], cmp FN) (Sequence[T], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	compare, done := abortable(toCmpFunc[T](cmp))
	var out Sequence[T]
	switch src := any(s).(type) {
	case *List[T]:
		out = src.sortStable(compare)
	default:
		vs := Values(s)
		slices.SortStableFunc(vs, compare)
		out = fromSame(s, vs)
	}
	if err := done(); err != nil {
		return nil, err
	}
	return out, nil
}

// SortBy sorts the sequence by comparing the keys that key computes for each element.
// The key function runs once per element.
func SortBy[K, T any, KF mapFunc[K, T], CF cmpFunc[K]](s Sequence[T], key KF, cmp CF) (Sequence[T], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	type keyed struct {
		key K
		val T
	}
	var (
		keyOf = toMapFunc[K, T](key)
		pairs []keyed
	)
	for v := range s.Iter() {
		k, err := keyOf(v)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, keyed{key: k, val: v})
	}
	compare, done := abortable(toCmpFunc[K](cmp))
	slices.SortStableFunc(pairs, func(a, b keyed) int {
		return compare(a.key, b.key)
	})
	if err := done(); err != nil {
		return nil, err
	}
	vs := make([]T, len(pairs))
	for i, p := range pairs {
		vs[i] = p.val
	}
	return fromSame(s, vs), nil
}

// abortable adapts a failing comparator to the standard library sort functions.
// After the first failure every comparison reports equality, so the sort finishes quickly,
// and done reports the failure.
func abortable[T any](cmp func(a, b T) (int, error)) (compare func(a, b T) int, done func() error) {
	var failure error
	compare = func(a, b T) int {
		if failure != nil {
			return 0
		}
		n, err := cmp(a, b)
		if err != nil {
			failure = err
			return 0
		}
		return n
	}
	return compare, func() error { return failure }
}
