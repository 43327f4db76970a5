package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/cardcore/internal/config"
	"github.com/hance08/cardcore/internal/constants"
	"github.com/hance08/cardcore/internal/keylock"
	"github.com/hance08/cardcore/internal/logger"
	"github.com/hance08/cardcore/internal/model"
	"github.com/hance08/cardcore/internal/security"
	"github.com/hance08/cardcore/internal/store"
	"github.com/hance08/cardcore/internal/utils"
	"github.com/hance08/cardcore/internal/validation"
	"github.com/shopspring/decimal"
)

// ProcessRequest is one withdraw or top-up attempt.
type ProcessRequest struct {
	CardID string `validate:"required,max=64"`
	PIN    string
	Amount decimal.Decimal
	Kind   model.Kind
}

// Processor authorizes requests and applies them to the account and ledger.
// Requests for the same card run one at a time; other cards are not blocked.
type Processor struct {
	repo         store.Repository
	locks        *keylock.KeyedMutex
	log          *slog.Logger
	storeTimeout time.Duration
	now          func() time.Time
}

func NewProcessor(repo store.Repository, cfg *config.Config, log *slog.Logger) *Processor {
	if log == nil {
		log = logger.Discard()
	}
	var timeout time.Duration
	if cfg != nil {
		timeout = cfg.Processor.StoreTimeout
	}
	return &Processor{
		repo:         repo,
		locks:        keylock.New(),
		log:          log,
		storeTimeout: timeout,
		now:          time.Now,
	}
}

// Process runs one attempt to a terminal state and appends exactly one ledger
// record for it. Declines come back as a FAILURE outcome with a nil error; a
// non-nil error wraps ErrStoreUnavailable and means the attempt was not applied.
//
// Cancelling ctx after the call starts has no effect, so an attempt is never
// left half applied.
func (p *Processor) Process(ctx context.Context, req ProcessRequest) (Outcome, error) {
	ctx = context.WithoutCancel(ctx)

	if kind, ok := model.ParseKind(string(req.Kind)); ok {
		req.Kind = kind
	}

	attempt := &model.TransactionRecord{
		CardID: req.CardID,
		Amount: req.Amount,
		Kind:   req.Kind,
	}

	if reason := checkRequest(req); reason != "" {
		return p.decline(ctx, attempt, CodeInvalidRequest, reason)
	}

	unlock := p.locks.Lock(req.CardID)
	defer unlock()

	var acc *model.Account
	err := p.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		acc, err = p.repo.GetAccount(ctx, req.CardID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return p.decline(ctx, attempt, CodeAccountNotFound, constants.ReasonCardNotFound)
		}
		return p.fail(ctx, attempt, err)
	}

	if !security.VerifyPIN(req.PIN, acc.PINHash) {
		return p.decline(ctx, attempt, CodeAuthenticationFailed, constants.ReasonInvalidPIN)
	}

	var reason string
	switch req.Kind {
	case model.KindWithdraw:
		if req.Amount.GreaterThan(acc.Balance) {
			return p.decline(ctx, attempt, CodeInsufficientFunds, constants.ReasonInsufficientFunds)
		}
		acc.Balance = acc.Balance.Sub(req.Amount)
		reason = constants.ReasonWithdrawalCompleted
	case model.KindTopUp:
		acc.Balance = acc.Balance.Add(req.Amount)
		reason = constants.ReasonTopUpCompleted
	}

	p.stamp(attempt, model.StatusSuccess, reason)

	err = p.withTimeout(ctx, func(ctx context.Context) error {
		return p.repo.ExecTx(ctx, func(tx store.Repository) error {
			if err := tx.PutAccount(ctx, acc); err != nil {
				return err
			}
			return tx.AppendRecord(ctx, attempt)
		})
	})
	if err != nil {
		return p.fail(ctx, attempt, err)
	}

	p.log.Debug("transaction approved",
		"card", utils.MaskCardID(req.CardID),
		"kind", req.Kind,
		"amount", utils.FormatAmount(req.Amount),
		"record", attempt.ID,
	)

	return Outcome{Status: model.StatusSuccess, Reason: reason, Code: CodeApproved}, nil
}

// checkRequest returns the ledger reason for a malformed request, or "".
// The range check runs first so oversized amounts never reach decimal math.
func checkRequest(req ProcessRequest) string {
	if !utils.InAmountRange(req.Amount) || !req.Amount.IsPositive() || !utils.HasCentPrecision(req.Amount) {
		return constants.ReasonInvalidAmount
	}

	if !req.Kind.Valid() {
		return constants.ReasonInvalidKind
	}

	if err := validation.Struct(req); err != nil {
		return constants.ReasonInvalidCardID
	}

	return ""
}

// decline logs a business failure and reports it. When even the failure
// record can't be written the caller gets a processing error instead.
func (p *Processor) decline(ctx context.Context, attempt *model.TransactionRecord, code Code, reason string) (Outcome, error) {
	p.stamp(attempt, model.StatusFailure, reason)

	if err := p.append(ctx, attempt); err != nil {
		p.log.Error("failed to log declined transaction",
			"card", utils.MaskCardID(attempt.CardID),
			"reason", reason,
			"err", err,
		)
		return Outcome{Status: model.StatusFailure, Reason: constants.ReasonProcessingError, Code: CodeStoreUnavailable},
			fmt.Errorf("%w: failed to log declined transaction: %w", ErrStoreUnavailable, err)
	}

	p.log.Info("transaction declined",
		"card", utils.MaskCardID(attempt.CardID),
		"kind", attempt.Kind,
		"code", code,
		"reason", reason,
	)

	return Outcome{Status: model.StatusFailure, Reason: reason, Code: code}, nil
}

// fail handles a store fault. Nothing was applied; the attempt is logged as
// a processing error if the ledger still accepts writes.
func (p *Processor) fail(ctx context.Context, attempt *model.TransactionRecord, cause error) (Outcome, error) {
	p.stamp(attempt, model.StatusFailure, constants.ReasonProcessingError)

	if err := p.append(ctx, attempt); err != nil {
		p.log.Error("failed to log processing error",
			"card", utils.MaskCardID(attempt.CardID),
			"err", err,
		)
	}

	p.log.Error("transaction not applied",
		"card", utils.MaskCardID(attempt.CardID),
		"kind", attempt.Kind,
		"err", cause,
	)

	return Outcome{Status: model.StatusFailure, Reason: constants.ReasonProcessingError, Code: CodeStoreUnavailable},
		fmt.Errorf("%w: %w", ErrStoreUnavailable, cause)
}

func (p *Processor) append(ctx context.Context, rec *model.TransactionRecord) error {
	return p.withTimeout(ctx, func(ctx context.Context) error {
		return p.repo.AppendRecord(ctx, rec)
	})
}

// stamp gives the attempt a fresh id, so a rolled back SUCCESS record and the
// FAILURE record that replaces it never share one.
func (p *Processor) stamp(rec *model.TransactionRecord, status model.Status, reason string) {
	rec.ID = uuid.NewString()
	rec.Status = status
	rec.Reason = reason
	rec.Timestamp = p.now().UTC()
}

func (p *Processor) withTimeout(ctx context.Context, fn func(context.Context) error) error {
	if p.storeTimeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, p.storeTimeout)
	defer cancel()
	return fn(ctx)
}
