package seqkit

import (
	"reflect"
	"slices"
)

// Kind names a category of sequence containers.
type Kind string

const (
	KindArray Kind = "array"
	KindList  Kind = "list"
	KindText  Kind = "text"
	// KindOther is reported for extension sequences that don't name their kind through Kinder.
	KindOther Kind = "other"
)

// ParseKind parses a conversion target.
// Only the built-in kinds are valid targets.
func ParseKind(raw string) (Kind, error) {
	switch k := Kind(raw); k {
	case KindArray, KindList, KindText:
		return k, nil
	default:
		return "", ErrUnsupportedTargetKind.F("%q", raw)
	}
}

// KindOf reports the kind of a sequence.
func KindOf[T any](s Sequence[T]) Kind {
	switch s := s.(type) {
	case nil:
		return ""
	case Kinder:
		return s.Kind()
	default:
		return KindOther
	}
}

// Into expresses canonical values as a sequence of the requested kind.
//
// KindText requires rune elements, otherwise ErrTypeMismatch is returned.
// Any kind other than array, list or text fails with ErrUnsupportedTargetKind.
// The input slice is not retained.
func Into[T any](vs []T, kind Kind) (Sequence[T], error) {
	switch kind {
	case KindArray:
		return Array[T](slices.Clone(vs)), nil
	case KindList:
		return ListOf(vs...), nil
	case KindText:
		rs, ok := any(vs).([]rune)
		if !ok {
			return nil, ErrTypeMismatch.F("text can only hold runes, got %s", reflect.TypeFor[T]())
		}
		return any(Text(string(rs))).(Sequence[T]), nil
	default:
		return nil, ErrUnsupportedTargetKind.F("%q", kind)
	}
}

// Convert re-expresses a sequence in another kind.
// When the sequence is already of the requested kind, it is returned as is.
func Convert[T any](s Sequence[T], kind Kind) (Sequence[T], error) {
	if s == nil {
		return nil, errNilSequence()
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if KindOf(s) == kind {
		return s, nil
	}
	return Into(Values(s), kind)
}

// Concat joins the sequences in order into a new sequence of the requested kind.
func Concat[T any](kind Kind, ss ...Sequence[T]) (Sequence[T], error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	for i, s := range ss {
		if s == nil {
			return nil, ErrTypeMismatch.F("sequence #%d is nil", i)
		}
	}
	return Into(slices.Collect(chain(ss...).Iter()), kind)
}
