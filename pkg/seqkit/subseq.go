package seqkit

import "slices"

// SubSeq returns the elements in [start, end) as a new sequence of the same kind.
//
// The end is optional and defaults to the length of the sequence.
// Negative start or end values count from the end of the sequence.
// After canonicalisation, a start below zero, an end past the length,
// or a start after the end fails with ErrIndexOutOfRange.
func SubSeq[T any](s Sequence[T], start int, end ...int) (Sequence[T], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	if 1 < len(end) {
		return nil, ErrInvalidArgument.F("SubSeq accepts a single end index, got %d", len(end))
	}
	length := Len(s)
	to := length
	if len(end) == 1 {
		to = end[0]
	}
	from := start
	if from < 0 {
		from += length
	}
	if to < 0 {
		to += length
	}
	if from < 0 || length < to || to < from {
		return nil, ErrIndexOutOfRange.F("sub-range [%d, %d) is invalid for length %d", start, to, length)
	}
	return subSeq(s, from, to), nil
}

// subSeq expects canonical bounds.
func subSeq[T any](s Sequence[T], start, end int) Sequence[T] {
	if sl, ok := s.(Slicer[T]); ok {
		return sl.SubSeq(start, end)
	}
	var (
		vs    []T
		index int
	)
	for v := range s.Iter() {
		if end <= index {
			break
		}
		if start <= index {
			vs = append(vs, v)
		}
		index++
	}
	return fromSame(s, vs)
}

// Take returns the first n elements.
// n is clamped into [0, Len], so Take never fails on a short sequence.
func Take[T any](s Sequence[T], n int) (Sequence[T], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	return subSeq(s, 0, clamp(n, Len(s))), nil
}

// Drop returns the sequence without its first n elements.
// n is clamped into [0, Len], so Drop never fails on a short sequence.
func Drop[T any](s Sequence[T], n int) (Sequence[T], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	length := Len(s)
	return subSeq(s, clamp(n, length), length), nil
}

func clamp(n, length int) int {
	return min(max(n, 0), length)
}

// TakeWhile returns the longest prefix whose elements all satisfy the predicate.
func TakeWhile[T any, FN predFunc[T]](s Sequence[T], pred FN) (Sequence[T], error) {
	n, err := prefixLen(s, pred)
	if err != nil {
		return nil, err
	}
	return subSeq(s, 0, n), nil
}

// DropWhile drops the longest prefix whose elements all satisfy the predicate.
func DropWhile[T any, FN predFunc[T]](s Sequence[T], pred FN) (Sequence[T], error) {
	n, err := prefixLen(s, pred)
	if err != nil {
		return nil, err
	}
	return subSeq(s, n, Len(s)), nil
}

func prefixLen[T any, FN predFunc[T]](s Sequence[T], pred FN) (int, error) {
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
		if !ok {
			break
		}
		n++
	}
	return n, nil
}

// Reverse returns the elements in reverse order, in the kind of the input.
func Reverse[T any](s Sequence[T]) Sequence[T] {
	switch src := any(s).(type) {
	case nil:
		return nil
	case Array[T]:
		vs := slices.Clone(src)
		slices.Reverse(vs)
		return vs
	case *List[T]:
		return src.reverse()
	case Text:
		return any(src.reverse()).(Sequence[T])
	}
	var l List[T]
	for v := range s.Iter() {
		l.Prepend(v)
	}
	return fromSame(s, l.ToSlice())
}

// Partition splits the sequence into chunks of n elements.
// The last chunk holds the remainder, and a non-positive n yields no chunks.
// Chunks have the kind of the input.
func Partition[T any](s Sequence[T], n int) []Sequence[T] {
	if s == nil || n <= 0 {
		return nil
	}
	var (
		vs     = Values(s)
		chunks []Sequence[T]
	)
	for start := 0; start < len(vs); start += n {
		end := min(start+n, len(vs))
		chunks = append(chunks, fromSame(s, vs[start:end:end]))
	}
	return chunks
}

// Split is like Partition, but it requires a positive chunk length,
// otherwise it fails with ErrInvalidArgument.
func Split[T any](s Sequence[T], length int) ([]Sequence[T], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	if length < 1 {
		return nil, ErrInvalidArgument.F("split length must be positive, got %d", length)
	}
	return Partition(s, length), nil
}

// RemoveAt returns the sequence without the element at the given index, in the kind of the input.
func RemoveAt[T any](s Sequence[T], index int) (Sequence[T], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	vs := Values(s)
	if index < 0 || len(vs) <= index {
		return nil, ErrIndexOutOfRange.F("index %d is out of range for length %d", index, len(vs))
	}
	return fromSame(s, slices.Delete(vs, index, index+1)), nil
}
