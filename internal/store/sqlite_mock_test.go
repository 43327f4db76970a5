package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hance08/cardcore/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &Store{db: db}, mock
}

func TestGetAccountSurfacesDriverErrors(t *testing.T) {
	s, mock := newMockStore(t)
	diskErr := errors.New("disk I/O error")

	mock.ExpectQuery("SELECT card_id, pin_hash").
		WithArgs("4111").
		WillReturnError(diskErr)

	_, err := s.GetAccount(context.Background(), "4111")
	require.Error(t, err)
	assert.ErrorIs(t, err, diskErr)
	assert.NotErrorIs(t, err, ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountScansCents(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).UnixNano()

	rows := sqlmock.NewRows([]string{"card_id", "pin_hash", "balance_cents", "holder_name", "version", "created_at", "updated_at"}).
		AddRow("4111", "hash", int64(80000), "Alice Doe", int64(3), now, now)
	mock.ExpectQuery("SELECT card_id, pin_hash").WithArgs("4111").WillReturnRows(rows)

	acc, err := s.GetAccount(context.Background(), "4111")
	require.NoError(t, err)
	assert.Equal(t, "800.00", acc.Balance.StringFixed(2))
	assert.Equal(t, int64(3), acc.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendRecordSurfacesDriverErrors(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO ledger").
		WillReturnError(driver.ErrBadConn)

	err := s.AppendRecord(context.Background(), &model.TransactionRecord{
		ID:        "id",
		CardID:    "4111",
		Amount:    decimal.RequireFromString("1"),
		Kind:      model.KindTopUp,
		Status:    model.StatusSuccess,
		Reason:    "Top-up completed",
		Timestamp: time.Now(),
	})
	assert.ErrorIs(t, err, driver.ErrBadConn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecTxRollsBackWhenCommitFails(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts").
		WithArgs("hash", int64(5000), "Alice Doe", sqlmock.AnyArg(), "4111", int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ledger").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("database is locked"))

	acc := &model.Account{CardID: "4111", PINHash: "hash", Balance: decimal.RequireFromString("50"), HolderName: "Alice Doe"}
	err := s.ExecTx(context.Background(), func(tx Repository) error {
		if err := tx.PutAccount(context.Background(), acc); err != nil {
			return err
		}
		return tx.AppendRecord(context.Background(), &model.TransactionRecord{
			ID: "id", CardID: "4111", Amount: decimal.RequireFromString("50"),
			Kind: model.KindWithdraw, Status: model.StatusSuccess, Reason: "Withdrawal completed",
			Timestamp: time.Now(),
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecTxRollbackOnCallbackError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := s.ExecTx(context.Background(), func(Repository) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
