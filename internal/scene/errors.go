package scene

import "errors"

var (
	// ErrNonFinite indicates a coordinate or radius that is NaN or Inf.
	ErrNonFinite = errors.New("scene: non-finite circle value")

	// ErrIndexOutOfRange indicates an index that does not address a circle.
	ErrIndexOutOfRange = errors.New("scene: circle index out of range")
)
