// Package config loads application configuration from the environment and
// builds the structured logger.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	Logger  LoggerConfig
	Storage StorageConfig
	Bank    BankConfig
}

// StorageConfig holds the data file locations
type StorageConfig struct {
	DataDir      string
	ClientsFile  string
	AccountsFile string
	AuditLogFile string
}

// BankConfig holds the business parameters applied to new accounts
type BankConfig struct {
	AgencyCode         string
	PerWithdrawalLimit decimal.Decimal
	MaxWithdrawalCount int
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{
			DataDir:      getEnv("DATA_DIR", "."),
			ClientsFile:  getEnv("CLIENTS_FILE", "clients.json"),
			AccountsFile: getEnv("ACCOUNTS_FILE", "accounts.json"),
			AuditLogFile: getEnv("AUDIT_LOG_FILE", "log.txt"),
		},
		Bank: BankConfig{
			AgencyCode:         getEnv("AGENCY_CODE", "0001"),
			PerWithdrawalLimit: getEnvAsDecimal("WITHDRAWAL_LIMIT", "500"),
			MaxWithdrawalCount: getEnvAsInt("MAX_WITHDRAWALS", 3),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Bank.AgencyCode == "" {
		return fmt.Errorf("agency code cannot be empty")
	}
	if c.Bank.PerWithdrawalLimit.Sign() <= 0 {
		return fmt.Errorf("withdrawal limit must be positive, got %s", c.Bank.PerWithdrawalLimit)
	}
	if c.Bank.MaxWithdrawalCount <= 0 {
		return fmt.Errorf("max withdrawals must be positive, got %d", c.Bank.MaxWithdrawalCount)
	}

	if c.Storage.ClientsFile == "" || c.Storage.AccountsFile == "" {
		return fmt.Errorf("data file names cannot be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if c.Logger.Format != "text" && c.Logger.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logger.Format)
	}

	return nil
}

// ClientsPath returns the full path of the clients file.
func (c *StorageConfig) ClientsPath() string {
	return filepath.Join(c.DataDir, c.ClientsFile)
}

// AccountsPath returns the full path of the accounts file.
func (c *StorageConfig) AccountsPath() string {
	return filepath.Join(c.DataDir, c.AccountsFile)
}

// AuditLogPath returns the full path of the audit log file.
func (c *StorageConfig) AuditLogPath() string {
	return filepath.Join(c.DataDir, c.AuditLogFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDecimal(key, defaultValue string) decimal.Decimal {
	value, err := decimal.NewFromString(getEnv(key, defaultValue))
	if err != nil {
		value, _ = decimal.NewFromString(defaultValue)
	}
	return value
}
