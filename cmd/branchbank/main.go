package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/vmaciel/branchbank/internal/audit"
	"github.com/vmaciel/branchbank/internal/cli"
	"github.com/vmaciel/branchbank/internal/config"
	"github.com/vmaciel/branchbank/internal/repository"
	"github.com/vmaciel/branchbank/internal/service"
)

func main() {
	// A missing .env just means plain environment configuration.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		logger.Error("failed to create data directory", "dir", cfg.Storage.DataDir, "error", err)
		os.Exit(1)
	}

	store := repository.NewJSONStore(cfg.Storage.ClientsPath(), cfg.Storage.AccountsPath())
	clients := repository.NewClientRepository()
	accounts := repository.NewAccountRepository()

	sink := audit.Multi{
		audit.NewFileSink(cfg.Storage.AuditLogPath(), logger),
		audit.NewSlogSink(logger),
	}

	svc := service.NewBankService(
		clients,
		accounts,
		store,
		service.SystemClock{},
		sink,
		logger,
		cfg.Bank.AgencyCode,
		cfg.Bank.PerWithdrawalLimit,
		cfg.Bank.MaxWithdrawalCount,
	)

	if err := svc.Load(); err != nil {
		logger.Error("failed to restore persisted state", "error", err)
		os.Exit(1)
	}

	logger.Info("starting branch bank",
		"agency", cfg.Bank.AgencyCode,
		"data_dir", cfg.Storage.DataDir,
		"log_level", cfg.Logger.Level,
	)

	menu := cli.NewMenu(svc, os.Stdin, os.Stdout, logger)
	menu.Run()
}
