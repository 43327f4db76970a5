package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hance08/cardcore/internal/config"
	"github.com/hance08/cardcore/internal/constants"
	"github.com/hance08/cardcore/internal/logger"
	"github.com/hance08/cardcore/internal/model"
	"github.com/hance08/cardcore/internal/security"
	"github.com/hance08/cardcore/internal/store"
	"github.com/hance08/cardcore/internal/utils"
	"github.com/hance08/cardcore/internal/validation"
	"github.com/shopspring/decimal"
)

var ErrCardExists = errors.New("card already exists")

// CreateCardInput carries the plaintext PIN only until it is hashed.
type CreateCardInput struct {
	CardID     string `validate:"required,number,max=64"`
	PIN        string `validate:"required,number,min=4,max=12"`
	HolderName string `validate:"required,max=100"`
	Balance    decimal.Decimal
}

// CardSummary is an account without its PIN hash.
type CardSummary struct {
	CardID     string
	HolderName string
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CardService struct {
	repo store.Repository
	log  *slog.Logger
}

func NewCardService(repo store.Repository, log *slog.Logger) *CardService {
	if log == nil {
		log = logger.Discard()
	}
	return &CardService{repo: repo, log: log}
}

func (cs *CardService) CreateCard(ctx context.Context, input CreateCardInput) (*CardSummary, error) {
	input.CardID = strings.TrimSpace(input.CardID)
	input.HolderName = strings.TrimSpace(input.HolderName)

	if err := validation.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if !utils.InAmountRange(input.Balance) {
		return nil, fmt.Errorf("%w: initial balance can't exceed %s", ErrInvalidRequest, constants.MaxAmount)
	}
	if input.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance can't be negative", ErrInvalidRequest)
	}
	if !utils.HasCentPrecision(input.Balance) {
		return nil, fmt.Errorf("%w: initial balance can have at most %d decimal places", ErrInvalidRequest, constants.AmountScale)
	}

	acc := &model.Account{
		CardID:     input.CardID,
		PINHash:    security.HashPIN(input.PIN),
		Balance:    input.Balance,
		HolderName: input.HolderName,
	}

	if err := cs.repo.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			return nil, fmt.Errorf("%w: %s", ErrCardExists, utils.MaskCardID(input.CardID))
		}
		return nil, fmt.Errorf("%w: failed to create card: %w", ErrStoreUnavailable, err)
	}

	cs.log.Info("card provisioned", "card", utils.MaskCardID(acc.CardID), "balance", utils.FormatAmount(acc.Balance))

	return toSummary(acc), nil
}

func (cs *CardService) ListCards(ctx context.Context) ([]*CardSummary, error) {
	accounts, err := cs.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list cards: %w", ErrStoreUnavailable, err)
	}

	cards := make([]*CardSummary, 0, len(accounts))
	for _, acc := range accounts {
		cards = append(cards, toSummary(acc))
	}
	return cards, nil
}

// SeedDefault provisions the configured demo card when seeding is enabled and
// the store holds no cards yet. It reports whether a card was created.
func (cs *CardService) SeedDefault(ctx context.Context, seed config.SeedConfig) (bool, error) {
	if !seed.Enabled {
		return false, nil
	}

	count, err := cs.repo.CountAccounts(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: failed to count cards: %w", ErrStoreUnavailable, err)
	}
	if count > 0 {
		return false, nil
	}

	balance := decimal.Zero
	if strings.TrimSpace(seed.Balance) != "" {
		balance, err = utils.ParseAmount(seed.Balance)
		if err != nil {
			return false, fmt.Errorf("invalid seed balance: %w", err)
		}
	}

	_, err = cs.CreateCard(ctx, CreateCardInput{
		CardID:     seed.CardID,
		PIN:        seed.PIN,
		HolderName: seed.HolderName,
		Balance:    balance,
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed card: %w", err)
	}
	return true, nil
}

func toSummary(acc *model.Account) *CardSummary {
	return &CardSummary{
		CardID:     acc.CardID,
		HolderName: acc.HolderName,
		Balance:    acc.Balance,
		CreatedAt:  acc.CreatedAt,
		UpdatedAt:  acc.UpdatedAt,
	}
}
