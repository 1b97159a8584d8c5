package harness

import "errors"

var (
	ErrExists         = errors.New("exists")
	ErrBadArgs        = errors.New("bad args")
	ErrBadExpect      = errors.New("bad expect")
	ErrUnknownProblem = errors.New("unknown problem")
)
