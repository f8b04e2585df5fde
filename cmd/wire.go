package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/mllib-cli/internal/adapters/catalog"
	"github.com/bnema/mllib-cli/internal/adapters/installer/pip"
	filejournal "github.com/bnema/mllib-cli/internal/adapters/journal/file"
	"github.com/bnema/mllib-cli/internal/application"
	"github.com/bnema/mllib-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	journalPathKey      = "journal.path"
	installerCommandKey = "installer.command"
	configDir           = ".mlc"
	journalFile         = "installs.log"
)

type app struct {
	service *application.Service
	journal *filejournal.Journal
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetDefault(journalPathKey, filepath.Join(homeDir, configDir, journalFile))
	cfg.SetDefault(installerCommandKey, pip.DefaultCommand)

	cat, err := catalog.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire catalog: %w", err)
	}

	journal, err := filejournal.New(cfg.GetString(journalPathKey))
	if err != nil {
		return nil, fmt.Errorf("wire install journal: %w", err)
	}

	installerCommand := envOrDefault("MLC_INSTALLER", cfg.GetString(installerCommandKey))
	installer := pip.New(installerCommand)

	return &app{
		service: application.NewService(cat, installer, journal, ports.SystemClock{}),
		journal: journal,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
