package types

import "errors"

// Application lifecycle errors.
var (
	ErrDetached         = errors.New("lamp is detached")
	ErrAlreadyAttached  = errors.New("lamp is already attached")
	ErrInvalidReference = errors.New("invalid verse reference")
)
