package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/cardcore/internal/model"
	"github.com/hance08/cardcore/internal/utils"
	sqlite "github.com/mattn/go-sqlite3"
)

const accountColumns = "card_id, pin_hash, balance_cents, holder_name, version, created_at, updated_at"

func (s *Store) CreateAccount(ctx context.Context, acc *model.Account) error {
	now := time.Now().UTC()
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = now
	}
	acc.UpdatedAt = acc.CreatedAt

	cents, err := balanceCents(acc)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO accounts (card_id, pin_hash, balance_cents, holder_name, version, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?);
    `, acc.CardID, acc.PINHash, cents, acc.HolderName, acc.Version,
		acc.CreatedAt.UnixNano(), acc.UpdatedAt.UnixNano())

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
			if sqliteErr.ExtendedCode == sqlite.ErrConstraintPrimaryKey || sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique {
				return fmt.Errorf("failed to create card '%s': %w", utils.MaskCardID(acc.CardID), ErrAccountExists)
			}
			return fmt.Errorf("failed to create card '%s': %w", utils.MaskCardID(acc.CardID), ErrConstraintViolation)
		}
		return fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, cardID string) (*model.Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE card_id = ?", cardID)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("card '%s': %w", utils.MaskCardID(cardID), ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query card '%s': %w", utils.MaskCardID(cardID), err)
	}

	return acc, nil
}

func (s *Store) PutAccount(ctx context.Context, acc *model.Account) error {
	now := time.Now().UTC()

	cents, err := balanceCents(acc)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
        UPDATE accounts
        SET pin_hash = ?, balance_cents = ?, holder_name = ?, version = version + 1, updated_at = ?
        WHERE card_id = ? AND version = ?
    `, acc.PINHash, cents, acc.HolderName, now.UnixNano(), acc.CardID, acc.Version)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
			return fmt.Errorf("failed to update card '%s': %w", utils.MaskCardID(acc.CardID), ErrConstraintViolation)
		}
		return fmt.Errorf("failed to update card '%s': %w", utils.MaskCardID(acc.CardID), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		var exists bool
		row := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM accounts WHERE card_id = ?)", acc.CardID)
		if err := row.Scan(&exists); err != nil {
			return fmt.Errorf("failed to check card existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("card '%s': %w", utils.MaskCardID(acc.CardID), ErrRecordNotFound)
		}
		return fmt.Errorf("card '%s' at version %d: %w", utils.MaskCardID(acc.CardID), acc.Version, ErrVersionConflict)
	}

	acc.Version++
	acc.UpdatedAt = now
	return nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+accountColumns+" FROM accounts ORDER BY created_at, card_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) CountAccounts(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM accounts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// balanceCents rejects balances the accounts table cannot hold instead of
// letting them wrap.
func balanceCents(acc *model.Account) (int64, error) {
	cents, err := utils.ToCents(acc.Balance)
	if err != nil {
		return 0, fmt.Errorf("card '%s' balance: %w: %w", utils.MaskCardID(acc.CardID), ErrConstraintViolation, err)
	}
	return cents, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	var balanceCents, createdAt, updatedAt int64

	err := row.Scan(
		&acc.CardID, &acc.PINHash, &balanceCents,
		&acc.HolderName, &acc.Version,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	acc.Balance = utils.FromCents(balanceCents)
	acc.CreatedAt = time.Unix(0, createdAt).UTC()
	acc.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return acc, nil
}
