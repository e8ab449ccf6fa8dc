package seqkit

import "math/rand/v2"

// Group is a key and the elements that share it.
type Group[K comparable, T any] struct {
	Key    K
	Values *List[T]
}

// GroupBy partitions the elements by the key that fn computes for them.
// Groups are ordered by the first appearance of their key,
// and each group keeps the relative order of its elements.
func GroupBy[K comparable, T any, FN mapFunc[K, T]](s Sequence[T], fn FN) ([]Group[K, T], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	var (
		keyOf  = toMapFunc[K, T](fn)
		groups []Group[K, T]
		index  = make(map[K]int)
	)
	for v := range s.Iter() {
		k, err := keyOf(v)
		if err != nil {
			return nil, err
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k, Values: &List[T]{}})
		}
		groups[i].Values.Append(v)
	}
	return groups, nil
}

// Number is the set of element types Min and Max can order.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Min returns the smallest number of the sequence.
// It fails with ErrEmptySequence when there is nothing to compare.
func Min[N Number](s Sequence[N]) (N, error) {
	return extremum(s, func(candidate, current N) bool { return candidate < current })
}

// Max returns the largest number of the sequence.
// It fails with ErrEmptySequence when there is nothing to compare.
func Max[N Number](s Sequence[N]) (N, error) {
	return extremum(s, func(candidate, current N) bool { return candidate > current })
}

func extremum[N Number](s Sequence[N], better func(candidate, current N) bool) (N, error) {
	var (
		result N
		found  bool
	)
	if s == nil {
		return result, errNilSequence()
	}
	for v := range s.Iter() {
		if !found || better(v, result) {
			result = v
			found = true
		}
	}
	if !found {
		return result, ErrEmptySequence.F("no elements to compare")
	}
	return result, nil
}

// RandomElement returns a randomly chosen element.
// It fails with ErrEmptySequence on an empty sequence.
func RandomElement[T any](s Sequence[T]) (T, error) {
	return randomElement(s, rand.IntN)
}

// RandomElementWith is like RandomElement, but it draws from the given source,
// which makes the choice reproducible.
// A nil rnd falls back to the global source.
func RandomElementWith[T any](rnd *rand.Rand, s Sequence[T]) (T, error) {
	if rnd == nil {
		return RandomElement(s)
	}
	return randomElement(s, rnd.IntN)
}

func randomElement[T any](s Sequence[T], intN func(n int) int) (T, error) {
	var zero T
	if s == nil {
		return zero, errNilSequence()
	}
	length := Len(s)
	if length == 0 {
		return zero, ErrEmptySequence.F("can't pick a random element")
	}
	return At(s, intN(length))
}
