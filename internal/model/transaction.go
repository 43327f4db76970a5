package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindWithdraw Kind = "withdraw"
	KindTopUp    Kind = "topup"
)

func (k Kind) Valid() bool {
	return k == KindWithdraw || k == KindTopUp
}

// ParseKind matches s against the known kinds ignoring case and surrounding
// space. An unknown kind is returned unchanged with ok false.
func ParseKind(s string) (kind Kind, ok bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k.Valid() {
		return k, true
	}
	return Kind(s), false
}

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
)

// TransactionRecord is one ledger line. Records are written once and never
// changed; Kind is kept exactly as requested, even when it is not a valid kind.
type TransactionRecord struct {
	ID        string
	CardID    string
	Amount    decimal.Decimal
	Kind      Kind
	Status    Status
	Reason    string
	Timestamp time.Time
}
