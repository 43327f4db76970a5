package cmd

import (
	"os"

	"github.com/hance08/cardcore/internal/app"
	"github.com/hance08/cardcore/internal/ui"
	"github.com/hance08/cardcore/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run(cmd)
		},
	}
}

func (r *infoRunner) Run(cmd *cobra.Command) error {
	cfg := r.app.Service.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if r.app.DBPath != "" {
		if _, err := os.Stat(r.app.DBPath); err == nil {
			dbExists = true
		}
	}

	cards, err := r.app.Service.Card.ListCards(cmd.Context())
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		Driver:       cfg.Database.Driver,
		DBPath:       r.app.DBPath,
		DBExists:     dbExists,
		StoreTimeout: cfg.Processor.StoreTimeout.String(),
		LogLevel:     cfg.Log.Level,
		CardCount:    len(cards),
		AppDataDir:   getAppDataDirOrUnknown(),
	}

	ui.PrintL1Title("cardcore")
	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.DataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
