package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hance08/cardcore/internal/model"
	"github.com/hance08/cardcore/internal/store"
	"github.com/shopspring/decimal"
)

// QueryService answers balance and history reads. It never writes.
type QueryService struct {
	repo store.Repository
}

func NewQueryService(repo store.Repository) *QueryService {
	return &QueryService{repo: repo}
}

func (qs *QueryService) GetBalance(ctx context.Context, cardID string) (decimal.Decimal, error) {
	acc, err := qs.repo.GetAccount(ctx, cardID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %w", ErrAccountNotFound, err)
		}
		return decimal.Zero, fmt.Errorf("%w: failed to get balance: %w", ErrStoreUnavailable, err)
	}
	return acc.Balance, nil
}

// GetHistory returns the ledger for cardID in chronological order, or every
// record when cardID is empty. Unknown cards simply have no records.
// TODO: add offset/limit once the ledger is large enough for it to matter.
func (qs *QueryService) GetHistory(ctx context.Context, cardID string) ([]*model.TransactionRecord, error) {
	var (
		records []*model.TransactionRecord
		err     error
	)
	if cardID == "" {
		records, err = qs.repo.ListRecords(ctx)
	} else {
		records, err = qs.repo.ListRecordsByCard(ctx, cardID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get transaction history: %w", ErrStoreUnavailable, err)
	}
	return records, nil
}
