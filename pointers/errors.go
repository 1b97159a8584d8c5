package pointers

import "github.com/sgostarter/i/commerr"

var (
	ErrInvalidInput = commerr.ErrInvalidArgument
)
