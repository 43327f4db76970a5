package service

import "errors"

// Business outcomes. These are carried by Outcome, not returned as errors
// from Process.
var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInsufficientFunds    = errors.New("insufficient funds")
)

// ErrStoreUnavailable marks an infrastructure fault. It is never a decline.
var ErrStoreUnavailable = errors.New("store unavailable")
