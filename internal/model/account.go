package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the stored state of one card.
type Account struct {
	CardID     string
	PINHash    string
	Balance    decimal.Decimal
	HolderName string
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Clone returns a copy that can be mutated without touching the original.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}
