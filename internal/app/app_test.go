package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/cardcore/internal/config"
	"github.com/hance08/cardcore/internal/model"
	"github.com/hance08/cardcore/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppSQLite(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "cardcore.db")

	application, cleanup, err := NewApp(cfg, os.DirFS("../.."))
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, cfg.Database.Path, application.DBPath)
	assert.FileExists(t, cfg.Database.Path)

	ctx := context.Background()
	created, err := application.Service.Card.SeedDefault(ctx, cfg.Seed)
	require.NoError(t, err)
	assert.True(t, created)

	out, err := application.Service.Processor.Process(ctx, service.ProcessRequest{
		CardID: cfg.Seed.CardID,
		PIN:    cfg.Seed.PIN,
		Amount: decimal.RequireFromString("200"),
		Kind:   model.KindWithdraw,
	})
	require.NoError(t, err)
	assert.True(t, out.Approved())

	balance, err := application.Service.Query.GetBalance(ctx, cfg.Seed.CardID)
	require.NoError(t, err)
	assert.Equal(t, "800.00", balance.StringFixed(2))
}

func TestNewAppMemory(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Driver = config.DriverMemory

	application, cleanup, err := NewApp(cfg, nil)
	require.NoError(t, err)
	defer cleanup()

	assert.Empty(t, application.DBPath)
	count, err := application.Store.CountAccounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Driver = "postgres"

	_, _, err := NewApp(cfg, nil)
	assert.Error(t, err)

	cfg = config.NewDefault()
	cfg.Database.Driver = config.DriverMemory
	cfg.Log.Level = "loud"

	_, _, err = NewApp(cfg, nil)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/cardcore/cardcore.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "cardcore", "cardcore.db"), got)

	got, err = ExpandPath("/var/lib/cardcore.db")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/cardcore.db", got)
}

func TestResolveDBPathDefault(t *testing.T) {
	got, err := ResolveDBPath("")
	require.NoError(t, err)
	assert.Equal(t, "cardcore.db", filepath.Base(got))
	assert.Equal(t, "cardcore", filepath.Base(filepath.Dir(got)))
}
