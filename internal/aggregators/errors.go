package aggregators

import (
	"errors"
)

var (
	ErrIndexFinalized = errors.New("activity index already finalized")
	ErrSelfMerge      = errors.New("activity index cannot be merged into itself")
)
