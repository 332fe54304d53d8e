package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	threadrender "github.com/bnema/askme/internal/adapters/render/thread"
	"github.com/bnema/askme/internal/adapters/repo/flatfile"
	"github.com/bnema/askme/internal/adapters/store/linefile"
	"github.com/bnema/askme/internal/application"
	"github.com/bnema/askme/internal/config"
	"github.com/bnema/askme/internal/domain"
	"github.com/bnema/askme/internal/logging"
	"github.com/spf13/viper"
)

// newPrompter is swapped in tests to keep them off the terminal.
var newPrompter = func() prompter { return terminalPrompter{} }

// configFileEnv points at a config file other than $HOME/.askme/config.toml.
const configFileEnv = "ASKME_CONFIG"

type app struct {
	cfg     config.Config
	logger  *slog.Logger
	service *application.Service

	renderEntries  func(string, []domain.Entry, application.Directory) (string, error)
	renderThread   func(application.ThreadView, application.Directory) (string, error)
	renderAccounts func([]domain.Account) (string, error)

	prompter prompter
}

func wireApp(stderr io.Writer) (*app, error) {
	ctx := context.Background()

	cfg, err := config.Load(viper.New(), os.Getenv(configFileEnv))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)

	store := linefile.NewStore()

	accounts, err := flatfile.LoadAccountRepository(ctx, store, cfg.AccountsPath, logger)
	if err != nil {
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	threads, err := flatfile.LoadThreadRepository(ctx, store, cfg.ThreadsPath, accounts, logger)
	if err != nil {
		return nil, fmt.Errorf("wire thread repository: %w", err)
	}

	return &app{
		cfg:            cfg,
		logger:         logger,
		service:        application.NewService(accounts, threads, logger),
		renderEntries:  threadrender.RenderEntries,
		renderThread:   threadrender.RenderThread,
		renderAccounts: threadrender.RenderAccounts,
		prompter:       newPrompter(),
	}, nil
}
