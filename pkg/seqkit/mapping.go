package seqkit

import "iter"

// Map applies fn to every element and collects the results into a list, in order.
func Map[O, I any, FN mapFunc[O, I]](s Sequence[I], fn FN) (*List[O], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	var (
		out    List[O]
		mapper = toMapFunc[O, I](fn)
	)
	for v := range s.Iter() {
		o, err := mapper(v)
		if err != nil {
			return nil, err
		}
		out.Append(o)
	}
	return &out, nil
}

// MapIndexed is like Map, but fn also receives the zero-based position of the element.
func MapIndexed[O, I any, FN mapIndexedFunc[O, I]](s Sequence[I], fn FN) (*List[O], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	var (
		out    List[O]
		mapper = toMapIndexedFunc[O, I](fn)
		index  int
	)
	for v := range s.Iter() {
		o, err := mapper(v, index)
		if err != nil {
			return nil, err
		}
		out.Append(o)
		index++
	}
	return &out, nil
}

// Map2 zips two sequences positionally and maps each pair.
// It stops at the end of the shorter sequence.
func Map2[O, A, B any, FN map2Func[O, A, B]](a Sequence[A], b Sequence[B], fn FN) (*List[O], error) {
	if a == nil || b == nil {
		return nil, errNilSequence()
	}
	var (
		out    List[O]
		mapper = toMap2Func[O, A, B](fn)
	)
	next, stop := iter.Pull(b.Iter())
	defer stop()
	for va := range a.Iter() {
		vb, ok := next()
		if !ok {
			break
		}
		o, err := mapper(va, vb)
		if err != nil {
			return nil, err
		}
		out.Append(o)
	}
	return &out, nil
}

// MapN zips any number of sequences positionally, and calls fn with one element from each of them.
// It stops at the end of the shortest sequence.
// At least one sequence is required, otherwise MapN fails with ErrTypeMismatch.
func MapN[O, I any, FN mapNFunc[O, I]](fn FN, ss ...Sequence[I]) (*List[O], error) {
	if len(ss) == 0 {
		return nil, ErrTypeMismatch.F("MapN requires at least one sequence")
	}
	var nexts = make([]func() (I, bool), 0, len(ss))
	for i, s := range ss {
		if s == nil {
			return nil, ErrTypeMismatch.F("sequence #%d is nil", i)
		}
		next, stop := iter.Pull(s.Iter())
		defer stop()
		nexts = append(nexts, next)
	}
	var (
		out    List[O]
		mapper = toMapNFunc[O, I](fn)
	)
	for {
		args := make([]I, len(nexts))
		for i, next := range nexts {
			v, ok := next()
			if !ok {
				return &out, nil
			}
			args[i] = v
		}
		o, err := mapper(args)
		if err != nil {
			return nil, err
		}
		out.Append(o)
	}
}

// Mapcat maps every element into a sequence and concatenates the results into a list.
func Mapcat[O, I any, FN mapFunc[Sequence[O], I]](s Sequence[I], fn FN) (*List[O], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	var (
		out    List[O]
		mapper = toMapFunc[Sequence[O], I](fn)
	)
	for v := range s.Iter() {
		sub, err := mapper(v)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			continue
		}
		for o := range sub.Iter() {
			out.Append(o)
		}
	}
	return &out, nil
}

// Keep maps every element and keeps only the results that fn accepted.
func Keep[O, I any, FN keepFunc[O, I]](s Sequence[I], fn FN) (*List[O], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	var (
		out  List[O]
		keep = toKeepFunc[O, I](fn)
	)
	for v := range s.Iter() {
		o, ok, err := keep(v)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Append(o)
		}
	}
	return &out, nil
}

// Filter collects the elements that satisfy the predicate into a list, in order.
func Filter[T any, FN predFunc[T]](s Sequence[T], pred FN) (*List[T], error) {
	return filter(s, toPredFunc[T](pred), true)
}

// Remove collects the elements that don't satisfy the predicate into a list, in order.
func Remove[T any, FN predFunc[T]](s Sequence[T], pred FN) (*List[T], error) {
	return filter(s, toPredFunc[T](pred), false)
}

func filter[T any](s Sequence[T], pred func(T) (bool, error), want bool) (*List[T], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	var out List[T]
	for v := range s.Iter() {
		ok, err := pred(v)
		if err != nil {
			return nil, err
		}
		if ok == want {
			out.Append(v)
		}
	}
	return &out, nil
}

// Reduce folds the sequence from the left, starting with the initial value.
// On an empty sequence the initial value is returned without calling fn.
func Reduce[O, I any, FN reduceFunc[O, I]](s Sequence[I], initial O, fn FN) (O, error) {
	if s == nil {
		return initial, errNilSequence()
	}
	var (
		result  = initial
		reducer = toReduceFunc[O, I](fn)
	)
	for v := range s.Iter() {
		o, err := reducer(result, v)
		if err != nil {
			return result, err
		}
		result = o
	}
	return result, nil
}
