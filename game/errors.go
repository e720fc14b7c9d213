package game

import "errors"

var (
	ErrUnknownMove    = errors.New("unknown move")
	ErrUnknownVariant = errors.New("unknown variant")
)
