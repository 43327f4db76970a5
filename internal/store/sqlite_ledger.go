package store

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/cardcore/internal/model"
	"github.com/hance08/cardcore/internal/utils"
	"github.com/shopspring/decimal"
)

const recordColumns = "id, card_id, amount, kind, status, reason, timestamp"

// AppendRecord inserts rec at the end of the ledger. The ledger table rejects
// updates and deletes through triggers.
func (s *Store) AppendRecord(ctx context.Context, rec *model.TransactionRecord) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO ledger (id, card_id, amount, kind, status, reason, timestamp)
        VALUES (?, ?, ?, ?, ?, ?, ?);
    `, rec.ID, rec.CardID, utils.CompactAmount(rec.Amount), string(rec.Kind), string(rec.Status), rec.Reason, rec.Timestamp.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to append ledger record: %w", err)
	}
	return nil
}

func (s *Store) ListRecordsByCard(ctx context.Context, cardID string) ([]*model.TransactionRecord, error) {
	return s.queryRecords(ctx, "SELECT "+recordColumns+" FROM ledger WHERE card_id = ? ORDER BY seq", cardID)
}

func (s *Store) ListRecords(ctx context.Context) ([]*model.TransactionRecord, error) {
	return s.queryRecords(ctx, "SELECT "+recordColumns+" FROM ledger ORDER BY seq")
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]*model.TransactionRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*model.TransactionRecord
	for rows.Next() {
		rec := &model.TransactionRecord{}
		var amount, kind, status string
		var timestamp int64

		if err := rows.Scan(&rec.ID, &rec.CardID, &amount, &kind, &status, &rec.Reason, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan ledger record: %w", err)
		}

		rec.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("ledger record %s has a bad amount %q: %w", rec.ID, amount, err)
		}
		rec.Kind = model.Kind(kind)
		rec.Status = model.Status(status)
		rec.Timestamp = time.Unix(0, timestamp).UTC()

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger: %w", err)
	}
	return records, nil
}
