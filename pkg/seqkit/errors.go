package seqkit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrIndexOutOfRange is returned when an index or a sub-range falls outside of a sequence.
	// Bounds are never silently clamped by the strict accessors.
	ErrIndexOutOfRange errorkit.Error = "seqkit: index out of range"
	// ErrTypeMismatch is returned when a value is not a recognised sequence,
	// or when the arguments of an operation are incompatible with each other.
	ErrTypeMismatch errorkit.Error = "seqkit: type mismatch"
	// ErrEmptySequence is returned by operations that are undefined on an empty input.
	ErrEmptySequence errorkit.Error = "seqkit: empty sequence"
	// ErrUnsupportedTargetKind is returned when a conversion is requested into an unknown Kind.
	ErrUnsupportedTargetKind errorkit.Error = "seqkit: unsupported target kind"
	// ErrInvalidArgument is returned for non-positive sizes where a positive value is required.
	ErrInvalidArgument errorkit.Error = "seqkit: invalid argument"
)

func errNilSequence() error {
	return ErrTypeMismatch.F("nil sequence")
}
