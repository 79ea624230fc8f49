package symalg

import "errors"

// Errors
var (
	ErrBadPartition = errors.New("partition rows must be positive and weakly decreasing")
	ErrBadExponent  = errors.New("exponent must be a non-negative integer")
	ErrBadExpr      = errors.New("bad partition expression")
)
