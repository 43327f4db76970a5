package store

import (
	"context"

	"github.com/hance08/cardcore/internal/model"
)

// AccountStore maps card ids to account records.
type AccountStore interface {
	GetAccount(ctx context.Context, cardID string) (*model.Account, error)
	// PutAccount writes acc if the stored version still equals acc.Version,
	// then bumps acc.Version. A moved version yields ErrVersionConflict.
	PutAccount(ctx context.Context, acc *model.Account) error
	CreateAccount(ctx context.Context, acc *model.Account) error
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	CountAccounts(ctx context.Context) (int, error)
}

// LedgerStore is append-only. Listings are in insertion order.
type LedgerStore interface {
	AppendRecord(ctx context.Context, rec *model.TransactionRecord) error
	ListRecordsByCard(ctx context.Context, cardID string) ([]*model.TransactionRecord, error)
	ListRecords(ctx context.Context) ([]*model.TransactionRecord, error)
}

type Repository interface {
	AccountStore
	LedgerStore

	// ExecTx runs fn against a transactional view of the store. Writes made
	// through that view are committed together when fn returns nil and
	// discarded otherwise.
	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}

var (
	_ Repository = (*Store)(nil)
	_ Repository = (*MemoryStore)(nil)
	_ Repository = (*memoryTx)(nil)
)
