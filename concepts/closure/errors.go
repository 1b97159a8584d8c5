package closure

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
)
