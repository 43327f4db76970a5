package service

import (
	"github.com/hance08/cardcore/internal/model"
)

type Code string

const (
	CodeApproved             Code = "Approved"
	CodeInvalidRequest       Code = "InvalidRequest"
	CodeAccountNotFound      Code = "AccountNotFound"
	CodeAuthenticationFailed Code = "AuthenticationFailed"
	CodeInsufficientFunds    Code = "InsufficientFunds"
	CodeStoreUnavailable     Code = "StoreUnavailable"
)

// Outcome is what a caller learns about one attempt: a status and a reason
// that is safe to show.
type Outcome struct {
	Status model.Status
	Reason string
	Code   Code
}

func (o Outcome) Approved() bool {
	return o.Status == model.StatusSuccess
}

// Err maps the outcome code to its sentinel error, nil when approved.
func (o Outcome) Err() error {
	switch o.Code {
	case CodeApproved:
		return nil
	case CodeInvalidRequest:
		return ErrInvalidRequest
	case CodeAccountNotFound:
		return ErrAccountNotFound
	case CodeAuthenticationFailed:
		return ErrAuthenticationFailed
	case CodeInsufficientFunds:
		return ErrInsufficientFunds
	default:
		return ErrStoreUnavailable
	}
}

// String renders "SUCCESS" or "FAILURE: <reason>".
func (o Outcome) String() string {
	if o.Approved() {
		return string(model.StatusSuccess)
	}
	return string(model.StatusFailure) + ": " + o.Reason
}
