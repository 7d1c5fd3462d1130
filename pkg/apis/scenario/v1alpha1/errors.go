package v1alpha1

import "errors"

// ErrInvalidSequenceKind is returned when an invalid sequence kind is specified.
var ErrInvalidSequenceKind = errors.New("invalid sequence kind")

// ErrPlatformNameTooLong is returned when a platform name exceeds the maximum length.
var ErrPlatformNameTooLong = errors.New("platform name is too long")

// ErrPlatformNameInvalid is returned when a platform name is not hostname compliant.
var ErrPlatformNameInvalid = errors.New("platform name is invalid")

// ErrDriverOptionsDecode wraps failures when decoding driver options into a typed view.
var ErrDriverOptionsDecode = errors.New("failed to decode driver options")
