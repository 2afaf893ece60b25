package animations

import "errors"

var (
	ErrUnknownAnimation    = errors.New("unknown animation")
	ErrEmptyAnimation      = errors.New("animation has no frames")
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrNegativeFrame       = errors.New("negative frame index")
	ErrUnnamedAnimation    = errors.New("animation has no name")
	ErrDuplicateAnimation  = errors.New("duplicate animation name")
)
