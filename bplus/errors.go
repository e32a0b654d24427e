package bplus

import "errors"

var (
	// ErrInvalidOrder signals a fanout order too small for the occupancy rules.
	ErrInvalidOrder = errors.New("bplus: invalid order")
	// ErrOrderMismatch signals a call with an order different from the one
	// the (non-empty) tree has been built with.
	ErrOrderMismatch = errors.New("bplus: order mismatch")
	// ErrNilTree is returned by mutating operations on a nil tree handle.
	ErrNilTree = errors.New("bplus: nil tree")
	// ErrCorrupted is returned by Check for any broken structural invariant.
	ErrCorrupted = errors.New("bplus: corrupted tree")
)
