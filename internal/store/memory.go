package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hance08/cardcore/internal/model"
	"github.com/hance08/cardcore/internal/utils"
)

var errClosed = errors.New("store is closed")

// MemoryStore keeps accounts and the ledger in process memory. Values are
// copied on the way in and out so callers never share state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*model.Account
	records  []*model.TransactionRecord
	closed   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]*model.Account)}
}

func (m *MemoryStore) GetAccount(_ context.Context, cardID string) (*model.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, errClosed
	}

	acc, ok := m.accounts[cardID]
	if !ok {
		return nil, fmt.Errorf("card '%s': %w", utils.MaskCardID(cardID), ErrRecordNotFound)
	}
	return acc.Clone(), nil
}

func (m *MemoryStore) PutAccount(_ context.Context, acc *model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}

	if err := m.checkVersion(acc.CardID, acc.Version); err != nil {
		return err
	}
	if err := checkBalance(acc); err != nil {
		return err
	}

	acc.Version++
	acc.UpdatedAt = time.Now().UTC()
	m.accounts[acc.CardID] = acc.Clone()
	return nil
}

func (m *MemoryStore) CreateAccount(_ context.Context, acc *model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}

	if _, ok := m.accounts[acc.CardID]; ok {
		return fmt.Errorf("failed to create card '%s': %w", utils.MaskCardID(acc.CardID), ErrAccountExists)
	}
	if err := checkBalance(acc); err != nil {
		return err
	}
	stampCreated(acc)
	m.accounts[acc.CardID] = acc.Clone()
	return nil
}

func (m *MemoryStore) ListAccounts(_ context.Context) ([]*model.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, errClosed
	}

	return sortedAccounts(m.accounts), nil
}

func (m *MemoryStore) CountAccounts(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, errClosed
	}
	return len(m.accounts), nil
}

func (m *MemoryStore) AppendRecord(_ context.Context, rec *model.TransactionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}

	cp := *rec
	m.records = append(m.records, &cp)
	return nil
}

func (m *MemoryStore) ListRecordsByCard(_ context.Context, cardID string) ([]*model.TransactionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, errClosed
	}
	return filterRecords(m.records, cardID, true), nil
}

func (m *MemoryStore) ListRecords(_ context.Context) ([]*model.TransactionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, errClosed
	}
	return filterRecords(m.records, "", false), nil
}

// ExecTx buffers writes in a memoryTx and applies them under one lock when
// fn succeeds. Versions are checked again at commit.
func (m *MemoryStore) ExecTx(ctx context.Context, fn func(Repository) error) error {
	tx := &memoryTx{
		base:     m,
		accounts: make(map[string]*model.Account),
		expected: make(map[string]int64),
	}

	if err := fn(tx); err != nil {
		return err
	}
	return tx.commit()
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MemoryStore) checkVersion(cardID string, version int64) error {
	current, ok := m.accounts[cardID]
	if !ok {
		return fmt.Errorf("card '%s': %w", utils.MaskCardID(cardID), ErrRecordNotFound)
	}
	if current.Version != version {
		return fmt.Errorf("card '%s' at version %d: %w", utils.MaskCardID(cardID), version, ErrVersionConflict)
	}
	return nil
}

// versionAbsent marks an account created inside a transaction.
const versionAbsent int64 = -1

type memoryTx struct {
	base     *MemoryStore
	accounts map[string]*model.Account
	expected map[string]int64
	records  []*model.TransactionRecord
}

func (t *memoryTx) GetAccount(ctx context.Context, cardID string) (*model.Account, error) {
	if acc, ok := t.accounts[cardID]; ok {
		return acc.Clone(), nil
	}
	return t.base.GetAccount(ctx, cardID)
}

func (t *memoryTx) PutAccount(ctx context.Context, acc *model.Account) error {
	current, err := t.GetAccount(ctx, acc.CardID)
	if err != nil {
		return err
	}
	if current.Version != acc.Version {
		return fmt.Errorf("card '%s' at version %d: %w", utils.MaskCardID(acc.CardID), acc.Version, ErrVersionConflict)
	}
	if err := checkBalance(acc); err != nil {
		return err
	}

	if _, seen := t.expected[acc.CardID]; !seen {
		t.expected[acc.CardID] = acc.Version
	}
	acc.Version++
	acc.UpdatedAt = time.Now().UTC()
	t.accounts[acc.CardID] = acc.Clone()
	return nil
}

func (t *memoryTx) CreateAccount(ctx context.Context, acc *model.Account) error {
	if _, err := t.GetAccount(ctx, acc.CardID); err == nil {
		return fmt.Errorf("failed to create card '%s': %w", utils.MaskCardID(acc.CardID), ErrAccountExists)
	} else if !errors.Is(err, ErrRecordNotFound) {
		return err
	}
	if err := checkBalance(acc); err != nil {
		return err
	}

	stampCreated(acc)
	t.expected[acc.CardID] = versionAbsent
	t.accounts[acc.CardID] = acc.Clone()
	return nil
}

func (t *memoryTx) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	t.base.mu.RLock()
	merged := make(map[string]*model.Account, len(t.base.accounts)+len(t.accounts))
	for id, acc := range t.base.accounts {
		merged[id] = acc
	}
	t.base.mu.RUnlock()

	for id, acc := range t.accounts {
		merged[id] = acc
	}
	return sortedAccounts(merged), nil
}

func (t *memoryTx) CountAccounts(ctx context.Context) (int, error) {
	accounts, err := t.ListAccounts(ctx)
	if err != nil {
		return 0, err
	}
	return len(accounts), nil
}

func (t *memoryTx) AppendRecord(_ context.Context, rec *model.TransactionRecord) error {
	cp := *rec
	t.records = append(t.records, &cp)
	return nil
}

func (t *memoryTx) ListRecordsByCard(ctx context.Context, cardID string) ([]*model.TransactionRecord, error) {
	records, err := t.base.ListRecordsByCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return append(records, filterRecords(t.records, cardID, true)...), nil
}

func (t *memoryTx) ListRecords(ctx context.Context) ([]*model.TransactionRecord, error) {
	records, err := t.base.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	return append(records, filterRecords(t.records, "", false)...), nil
}

func (t *memoryTx) ExecTx(context.Context, func(Repository) error) error {
	return ErrNestedTx
}

func (t *memoryTx) Close() error {
	return nil
}

func (t *memoryTx) commit() error {
	m := t.base
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}

	for cardID, version := range t.expected {
		if version == versionAbsent {
			if _, ok := m.accounts[cardID]; ok {
				return fmt.Errorf("failed to create card '%s': %w", utils.MaskCardID(cardID), ErrAccountExists)
			}
			continue
		}
		if err := m.checkVersion(cardID, version); err != nil {
			return err
		}
	}

	for cardID, acc := range t.accounts {
		m.accounts[cardID] = acc
	}
	m.records = append(m.records, t.records...)
	return nil
}

// checkBalance applies the same limits as the accounts table: no negative
// balance and cents that fit in an int64.
func checkBalance(acc *model.Account) error {
	if acc.Balance.IsNegative() {
		return fmt.Errorf("card '%s' balance below zero: %w", utils.MaskCardID(acc.CardID), ErrConstraintViolation)
	}
	if _, err := balanceCents(acc); err != nil {
		return err
	}
	return nil
}

func stampCreated(acc *model.Account) {
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = time.Now().UTC()
	}
	acc.UpdatedAt = acc.CreatedAt
}

func sortedAccounts(accounts map[string]*model.Account) []*model.Account {
	out := make([]*model.Account, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, acc.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CardID < out[j].CardID
	})
	return out
}

func filterRecords(records []*model.TransactionRecord, cardID string, byCard bool) []*model.TransactionRecord {
	out := make([]*model.TransactionRecord, 0, len(records))
	for _, rec := range records {
		if byCard && rec.CardID != cardID {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out
}
