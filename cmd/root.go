package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/hance08/cardcore/cmd/card"
	"github.com/hance08/cardcore/internal/app"
	"github.com/hance08/cardcore/internal/config"
	"github.com/hance08/cardcore/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	os.Exit(run(migrations, os.Args[1:]))
}

func run(migrations fs.FS, args []string) int {
	cfgFile = configFlag(args)

	if err := initConfig(); err != nil {
		return errhandler.HandleError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		return errhandler.HandleError(err)
	}
	defer cleanup()

	seeded, err := application.Service.Card.SeedDefault(ctx, cfg.Seed)
	if err != nil {
		return errhandler.HandleError(err)
	}
	if seeded {
		application.Logger.Info("seeded demo card", "holder", cfg.Seed.HolderName)
	}

	rootCmd := NewRootCmd(application)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return errhandler.HandleError(err)
	}
	return errhandler.ExitOK
}

func NewRootCmd(application *app.App) *cobra.Command {
	svc := application.Service

	rootCmd := &cobra.Command{
		Use:   "cardcore",
		Short: "cardcore authorizes card withdrawals and top-ups against a ledger",
		Long: `cardcore authorizes card withdrawals and top-ups.

Every attempt is checked against the card PIN and balance, and every attempt,
approved or declined, is appended to the transaction ledger.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(card.NewCardCmd(svc))

	rootCmd.AddCommand(NewWithdrawCmd(svc))
	rootCmd.AddCommand(NewTopUpCmd(svc))
	rootCmd.AddCommand(NewProcessCmd(svc))
	rootCmd.AddCommand(NewBalanceCmd(svc))
	rootCmd.AddCommand(NewHistoryCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(application))

	return rootCmd
}

// configFlag reads --config before cobra runs, since the store has to be
// open when the commands are built.
func configFlag(args []string) string {
	flags := pflag.NewFlagSet("cardcore", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	var path string
	flags.StringVarP(&path, "config", "c", "", "")
	_ = flags.Parse(args)
	return path
}

func initConfig() error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("CARDCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return cfg.Validate()
}

// setDefaults registers every key so env overrides work without a file and
// the generated config lists all options.
func setDefaults() {
	d := config.NewDefault()

	viper.SetDefault("database.driver", d.Database.Driver)
	viper.SetDefault("database.path", d.Database.Path)
	viper.SetDefault("database.busy_timeout", d.Database.BusyTimeout)
	viper.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)
	viper.SetDefault("processor.store_timeout", d.Processor.StoreTimeout.String())
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)
	viper.SetDefault("seed.enabled", d.Seed.Enabled)
	viper.SetDefault("seed.card_id", d.Seed.CardID)
	viper.SetDefault("seed.pin", d.Seed.PIN)
	viper.SetDefault("seed.balance", d.Seed.Balance)
	viper.SetDefault("seed.holder_name", d.Seed.HolderName)
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
