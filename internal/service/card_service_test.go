package service

import (
	"context"
	"testing"

	"github.com/hance08/cardcore/internal/config"
	"github.com/hance08/cardcore/internal/model"
	"github.com/hance08/cardcore/internal/security"
	"github.com/hance08/cardcore/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCard(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryStore()
	cs := NewCardService(repo, nil)

	card, err := cs.CreateCard(ctx, CreateCardInput{
		CardID:     " 4000000000000002 ",
		PIN:        "4321",
		HolderName: "Bob Lee",
		Balance:    dec("25.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "4000000000000002", card.CardID)
	assert.Equal(t, "25.50", card.Balance.StringFixed(2))

	acc, err := repo.GetAccount(ctx, "4000000000000002")
	require.NoError(t, err)
	assert.NotEqual(t, "4321", acc.PINHash)
	assert.True(t, security.VerifyPIN("4321", acc.PINHash))

	_, err = cs.CreateCard(ctx, CreateCardInput{CardID: "4000000000000002", PIN: "1111", HolderName: "Eve", Balance: decimal.Zero})
	assert.ErrorIs(t, err, ErrCardExists)
}

func TestCreateCardValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateCardInput
	}{
		{"empty card", CreateCardInput{CardID: "", PIN: "1234", HolderName: "A", Balance: decimal.Zero}},
		{"non-numeric card", CreateCardInput{CardID: "4111-1111", PIN: "1234", HolderName: "A", Balance: decimal.Zero}},
		{"short pin", CreateCardInput{CardID: "4111", PIN: "12", HolderName: "A", Balance: decimal.Zero}},
		{"letters in pin", CreateCardInput{CardID: "4111", PIN: "12ab", HolderName: "A", Balance: decimal.Zero}},
		{"blank holder", CreateCardInput{CardID: "4111", PIN: "1234", HolderName: "   ", Balance: decimal.Zero}},
		{"negative balance", CreateCardInput{CardID: "4111", PIN: "1234", HolderName: "A", Balance: dec("-1")}},
		{"sub-cent balance", CreateCardInput{CardID: "4111", PIN: "1234", HolderName: "A", Balance: dec("1.005")}},
		{"oversized balance", CreateCardInput{CardID: "4111", PIN: "1234", HolderName: "A", Balance: dec("184467440737095516.16")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := store.NewMemoryStore()
			cs := NewCardService(repo, nil)

			_, err := cs.CreateCard(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrInvalidRequest)

			count, err := repo.CountAccounts(context.Background())
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestListCardsHidesPIN(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryStore()
	seedCard(t, repo, testCard, testPIN, "10.00")
	cs := NewCardService(repo, nil)

	cards, err := cs.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, testCard, cards[0].CardID)
	assert.Equal(t, "Alice Doe", cards[0].HolderName)
}

func TestSeedDefault(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryStore()
	cs := NewCardService(repo, nil)
	seed := config.NewDefault().Seed

	created, err := cs.SeedDefault(ctx, seed)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = cs.SeedDefault(ctx, seed)
	require.NoError(t, err)
	assert.False(t, created)

	acc, err := repo.GetAccount(ctx, seed.CardID)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", acc.Balance.StringFixed(2))

	p := newTestProcessor(repo)
	out, err := p.Process(ctx, ProcessRequest{CardID: seed.CardID, PIN: seed.PIN, Amount: dec("200"), Kind: model.KindWithdraw})
	require.NoError(t, err)
	assert.True(t, out.Approved())
}

func TestSeedDefaultDisabled(t *testing.T) {
	repo := store.NewMemoryStore()
	cs := NewCardService(repo, nil)
	seed := config.NewDefault().Seed
	seed.Enabled = false

	created, err := cs.SeedDefault(context.Background(), seed)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := repo.CountAccounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSeedDefaultRejectsBadBalance(t *testing.T) {
	cs := NewCardService(store.NewMemoryStore(), nil)
	seed := config.NewDefault().Seed
	seed.Balance = "lots"

	_, err := cs.SeedDefault(context.Background(), seed)
	assert.Error(t, err)
}
