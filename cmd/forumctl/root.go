package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/coolfrog-dev/coolfrog/internal/config"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
	"github.com/coolfrog-dev/coolfrog/internal/storage/pg"
)

var configFolder string

var RootCmd = &cobra.Command{
	Use:           "forumctl",
	Short:         "Administer a coolfrog deployment",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		logger.Initialize("warn", false)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(configFolder)
}

// openStorage opens a small pool; commands issue a handful of queries.
func openStorage() (*config.Config, *pg.Storage, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	storage, err := pg.New(cfg, pg.LightweightConnectionConfig())
	if err != nil {
		return nil, nil, err
	}
	return cfg, storage, nil
}

func success(format string, args ...any) {
	fmt.Println(color.New(color.FgGreen, color.Bold).Sprintf(format, args...))
}
