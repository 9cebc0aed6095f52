package lazysort

import "errors"

var (
	ErrNilLess          = errors.New("lazysort: less function is nil")
	ErrInvalidCapacity  = errors.New("lazysort: capacity must be at least 2")
	ErrCapacityTooSmall = errors.New("lazysort: work stack too small for buffer")
	ErrInvalidMode      = errors.New("lazysort: unknown capacity mode")
	ErrInvalidPivot     = errors.New("lazysort: unknown pivot rule")
)

// Raised as panics by builds with the lazysortcheck tag.
var (
	ErrPartitionViolation = errors.New("lazysort: partition post-condition violated")
	ErrOrderViolation     = errors.New("lazysort: emitted elements out of order")
	ErrNotPermutation     = errors.New("lazysort: emitted element is not part of the input")
	ErrRangeInvariant     = errors.New("lazysort: work stack range invariant violated")
)
