package store

import "errors"

var (
	ErrAccountExists       = errors.New("account already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrVersionConflict     = errors.New("account was modified concurrently")
	ErrNestedTx            = errors.New("store is already in a transaction")
)
