package seqkit

// Callback parameters accept both their plain and their error-returning form.
// The error-returning form lets a caller abort an algorithm midway;
// the error is passed back to the caller unchanged.

type doFunc[T any] interface {
	func(T) | func(T) error
}

func toDoFunc[T any, FN doFunc[T]](fn FN) func(T) error {
	switch fn := any(fn).(type) {
	case func(T):
		return func(v T) error {
			fn(v)
			return nil
		}
	case func(T) error:
		return fn
	default:
		panic("unexpected")
	}
}

type doIndexedFunc[T any] interface {
	func(T, int) | func(T, int) error
}

func toDoIndexedFunc[T any, FN doIndexedFunc[T]](fn FN) func(T, int) error {
	switch fn := any(fn).(type) {
	case func(T, int):
		return func(v T, i int) error {
			fn(v, i)
			return nil
		}
	case func(T, int) error:
		return fn
	default:
		panic("unexpected")
	}
}

type mapFunc[O, I any] interface {
	func(I) O | func(I) (O, error)
}

func toMapFunc[O, I any, FN mapFunc[O, I]](fn FN) func(I) (O, error) {
	switch fn := any(fn).(type) {
	case func(I) O:
		return func(v I) (O, error) {
			return fn(v), nil
		}
	case func(I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type mapIndexedFunc[O, I any] interface {
	func(I, int) O | func(I, int) (O, error)
}

func toMapIndexedFunc[O, I any, FN mapIndexedFunc[O, I]](fn FN) func(I, int) (O, error) {
	switch fn := any(fn).(type) {
	case func(I, int) O:
		return func(v I, i int) (O, error) {
			return fn(v, i), nil
		}
	case func(I, int) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type map2Func[O, A, B any] interface {
	func(A, B) O | func(A, B) (O, error)
}

func toMap2Func[O, A, B any, FN map2Func[O, A, B]](fn FN) func(A, B) (O, error) {
	switch fn := any(fn).(type) {
	case func(A, B) O:
		return func(a A, b B) (O, error) {
			return fn(a, b), nil
		}
	case func(A, B) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type mapNFunc[O, I any] interface {
	func([]I) O | func([]I) (O, error)
}

func toMapNFunc[O, I any, FN mapNFunc[O, I]](fn FN) func([]I) (O, error) {
	switch fn := any(fn).(type) {
	case func([]I) O:
		return func(vs []I) (O, error) {
			return fn(vs), nil
		}
	case func([]I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type keepFunc[O, I any] interface {
	func(I) (O, bool) | func(I) (O, bool, error)
}

func toKeepFunc[O, I any, FN keepFunc[O, I]](fn FN) func(I) (O, bool, error) {
	switch fn := any(fn).(type) {
	case func(I) (O, bool):
		return func(v I) (O, bool, error) {
			o, ok := fn(v)
			return o, ok, nil
		}
	case func(I) (O, bool, error):
		return fn
	default:
		panic("unexpected")
	}
}

type predFunc[T any] interface {
	func(T) bool | func(T) (bool, error)
}

func toPredFunc[T any, FN predFunc[T]](fn FN) func(T) (bool, error) {
	switch fn := any(fn).(type) {
	case func(T) bool:
		return func(v T) (bool, error) {
			return fn(v), nil
		}
	case func(T) (bool, error):
		return fn
	default:
		panic("unexpected")
	}
}

type reduceFunc[O, I any] interface {
	func(O, I) O | func(O, I) (O, error)
}

func toReduceFunc[O, I any, FN reduceFunc[O, I]](fn FN) func(O, I) (O, error) {
	switch fn := any(fn).(type) {
	case func(O, I) O:
		return func(o O, v I) (O, error) {
			return fn(o, v), nil
		}
	case func(O, I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type cmpFunc[T any] interface {
	func(a, b T) int | func(a, b T) (int, error)
}

func toCmpFunc[T any, FN cmpFunc[T]](fn FN) func(a, b T) (int, error) {
	switch fn := any(fn).(type) {
	case func(a, b T) int:
		return func(a, b T) (int, error) {
			return fn(a, b), nil
		}
	case func(a, b T) (int, error):
		return fn
	default:
		panic("unexpected")
	}
}
