// Package service implements the bank's operation layer: the entry points
// the interactive driver calls, audit decoration around them, and the
// mapping from domain errors to service error codes.
package service

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vmaciel/branchbank/internal/audit"
	"github.com/vmaciel/branchbank/internal/models"
	"github.com/vmaciel/branchbank/internal/repository"
)

// BankService coordinates the registries, the persistence store, the clock,
// and the audit sink behind every externally invoked operation.
type BankService struct {
	clients  *repository.ClientRepository
	accounts *repository.AccountRepository
	store    *repository.JSONStore
	clock    Clock
	sink     audit.Sink
	logger   *slog.Logger

	agency             string
	perWithdrawalLimit decimal.Decimal
	maxWithdrawalCount int
}

// NewBankService creates the service with injected collaborators. agency,
// perWithdrawalLimit, and maxWithdrawalCount configure every account the
// service opens.
func NewBankService(
	clients *repository.ClientRepository,
	accounts *repository.AccountRepository,
	store *repository.JSONStore,
	clock Clock,
	sink audit.Sink,
	logger *slog.Logger,
	agency string,
	perWithdrawalLimit decimal.Decimal,
	maxWithdrawalCount int,
) *BankService {
	return &BankService{
		clients:            clients,
		accounts:           accounts,
		store:              store,
		clock:              clock,
		sink:               sink,
		logger:             logger,
		agency:             agency,
		perWithdrawalLimit: perWithdrawalLimit,
		maxWithdrawalCount: maxWithdrawalCount,
	}
}

// Load restores the registries from the persisted files. Balances and
// ledgers are session state and start empty.
func (s *BankService) Load() error {
	clientRecords, err := s.store.LoadClients()
	if err != nil {
		return internalError("failed to load clients: %v", err)
	}
	s.clients.Restore(clientRecords)

	file, err := s.store.LoadAccounts()
	if err != nil {
		return internalError("failed to load accounts: %v", err)
	}
	s.accounts.Restore(file, s.clients, s.agency)

	s.logger.Info("state restored",
		"clients", len(clientRecords),
		"accounts", len(file.Accounts),
	)
	return nil
}

// audited invokes op and reports it to the audit sink exactly once, after
// op returns and regardless of its outcome.
func (s *BankService) audited(operation string, args []string, op func() error) error {
	err := op()
	s.sink.RecordEvent(operation, args, s.clock.Now())
	return err
}

// resolve finds the client by tax id and its first account, the one the
// menu operations act on.
func (s *BankService) resolve(taxID string) (*models.PhysicalPersonClient, models.BankAccount, error) {
	client, err := s.clients.FindByTaxID(taxID)
	if err != nil {
		return nil, nil, wrapDomain(err)
	}
	accounts := client.Accounts()
	if len(accounts) == 0 {
		return nil, nil, wrapDomain(models.ErrAccountNotFound)
	}
	return client, accounts[0], nil
}

// CreateClient registers a natural-person client and persists the client
// list. The tax id must be unused.
func (s *BankService) CreateClient(address, taxID, name, birthDate string) (*models.PhysicalPersonClient, error) {
	var client *models.PhysicalPersonClient
	err := s.audited("create_client", []string{taxID, name}, func() error {
		if err := ValidateTaxID(taxID); err != nil {
			return &ServiceError{Code: ErrCodeInvalidTaxID, Message: err.Error()}
		}
		if err := ValidateBirthDate(birthDate, s.clock.Now()); err != nil {
			return &ServiceError{Code: ErrCodeInvalidBirthDate, Message: err.Error()}
		}

		c := models.NewPhysicalPersonClient(address, taxID, name, birthDate)
		if err := s.clients.Register(c); err != nil {
			return wrapDomain(err)
		}
		if err := s.store.SaveClients(s.clients.Records()); err != nil {
			return internalError("failed to persist clients: %v", err)
		}
		client = c
		return nil
	})
	return client, err
}

// ClientExists reports whether a tax id is already registered, for
// uniqueness checks before registration.
func (s *BankService) ClientExists(taxID string) bool {
	return s.clients.Exists(taxID)
}

// CreateAccount opens a checking account for an existing client, assigns
// the next account number, and persists the registry.
func (s *BankService) CreateAccount(taxID string) (*models.CheckingAccount, error) {
	var acct *models.CheckingAccount
	err := s.audited("create_account", []string{taxID}, func() error {
		client, err := s.clients.FindByTaxID(taxID)
		if err != nil {
			return wrapDomain(err)
		}

		number := s.accounts.NextNumber()
		a := models.NewCheckingAccount(number, s.agency, client, s.perWithdrawalLimit, s.maxWithdrawalCount)
		s.accounts.Add(a)
		client.AddAccount(a)

		if err := s.store.SaveAccounts(s.accounts.File()); err != nil {
			return internalError("failed to persist accounts: %v", err)
		}
		acct = a
		return nil
	})
	return acct, err
}

// Deposit requests a deposit on the client's account, going through the
// client's daily quota check before the amount is applied.
func (s *BankService) Deposit(taxID string, amount decimal.Decimal) error {
	return s.audited("deposit", []string{taxID, amount.String()}, func() error {
		client, acct, err := s.resolve(taxID)
		if err != nil {
			return err
		}
		if err := client.RequestTransaction(acct, models.NewDeposit(amount), s.clock.Now()); err != nil {
			return wrapDomain(err)
		}
		return nil
	})
}

// Withdraw requests a withdrawal on the client's account, subject to the
// daily quota and the account's withdrawal rules.
func (s *BankService) Withdraw(taxID string, amount decimal.Decimal) error {
	return s.audited("withdraw", []string{taxID, amount.String()}, func() error {
		client, acct, err := s.resolve(taxID)
		if err != nil {
			return err
		}
		if err := client.RequestTransaction(acct, models.NewWithdrawal(amount), s.clock.Now()); err != nil {
			return wrapDomain(err)
		}
		return nil
	})
}

// Statement holds an account's reported records and its current balance.
type Statement struct {
	Records []models.TransactionRecord
	Balance decimal.Decimal
}

// AccountStatement reports the client's account history, optionally
// filtered by transaction kind (case-insensitive; empty means all).
func (s *BankService) AccountStatement(taxID, kindFilter string) (*Statement, error) {
	var stmt *Statement
	err := s.audited("statement", []string{taxID, kindFilter}, func() error {
		_, acct, err := s.resolve(taxID)
		if err != nil {
			return err
		}
		result := &Statement{Balance: acct.Balance()}
		for r := range acct.Ledger().Report(kindFilter) {
			result.Records = append(result.Records, r)
		}
		stmt = result
		return nil
	})
	return stmt, err
}

// ListClients returns the registered clients in registration order.
func (s *BankService) ListClients() []*models.PhysicalPersonClient {
	return s.clients.All()
}

// ListAccounts returns a fresh catalog iterator over every account, in
// creation order.
func (s *BankService) ListAccounts() *models.CatalogIterator {
	return models.NewCatalogIterator(s.accounts.All())
}
