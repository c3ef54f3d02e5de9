package memkit

import "errors"

// ErrOutOfRange is returned by checked accessors when the index is not
// within [0, Len()).
var ErrOutOfRange = errors.New("memkit: index out of range")

// ErrEmpty is returned by operations that require at least one element.
var ErrEmpty = errors.New("memkit: container is empty")
