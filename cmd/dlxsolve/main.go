// Command dlxsolve is the runnable entry point over the dlx core's two
// collaborators, wiring config, logging, and persistence the way a single
// flag-driven web server once did, but as cobra subcommands instead of one
// HTTP route, since this module's surface is a library exercised from a
// shell rather than a web service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raaphorst/dlxgo/internal/config"
	"github.com/raaphorst/dlxgo/internal/ports"
	"github.com/raaphorst/dlxgo/internal/runlog"
	"github.com/raaphorst/dlxgo/internal/storage"
	"github.com/raaphorst/dlxgo/internal/usecase"

	"github.com/charmbracelet/log"
)

type app struct {
	cfg    *config.Config
	logger *log.Logger
	uc     *usecase.Service
}

func main() {
	var (
		configPath string
		logLevel   string
		outputDir  string
	)

	var theApp *app

	root := &cobra.Command{
		Use:   "dlxsolve",
		Short: "Solve exact-cover instances with dancing links",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			logger := runlog.New(cfg.LogLevel)
			var store ports.Store
			if cfg.OutputDir != "" {
				store = storage.NewFS(cfg.OutputDir)
			}
			theApp = &app{cfg: cfg, logger: logger, uc: usecase.NewService(store)}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	root.PersistentFlags().StringVar(&outputDir, "output", "", "directory to persist solved runs under (overrides config)")

	root.AddCommand(newSudokuCmd(&theApp))
	root.AddCommand(newDesignCmd(&theApp))
	root.AddCommand(newCoverCmd(&theApp))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
