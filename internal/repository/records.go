// Package repository provides the in-memory client and account registries
// and their JSON file persistence.
package repository

import (
	"github.com/shopspring/decimal"

	"github.com/vmaciel/branchbank/internal/models"
)

// ClientRecord is the persisted shape of a registered client. Field names
// are a compatibility contract with previously written files.
type ClientRecord struct {
	Address   string `json:"address"`
	TaxID     string `json:"taxId"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

// NewClientRecord maps a client to its persisted shape.
func NewClientRecord(c *models.PhysicalPersonClient) ClientRecord {
	return ClientRecord{
		Address:   c.Address(),
		TaxID:     c.TaxID(),
		Name:      c.Name(),
		BirthDate: c.BirthDate(),
	}
}

// ToClient reconstructs the client from its persisted shape.
func (r ClientRecord) ToClient() *models.PhysicalPersonClient {
	return models.NewPhysicalPersonClient(r.Address, r.TaxID, r.Name, r.BirthDate)
}

// AccountRecord is the persisted shape of one account in the registry file.
// Balance and ledger are session state and deliberately absent.
type AccountRecord struct {
	Number             int             `json:"number"`
	Client             ClientRecord    `json:"client"`
	PerWithdrawalLimit decimal.Decimal `json:"perWithdrawalLimit"`
	MaxWithdrawalCount int             `json:"maxWithdrawalCount"`
}

// NewAccountRecord maps an account to its persisted shape, embedding its
// owner's client record.
func NewAccountRecord(a *models.CheckingAccount) AccountRecord {
	return AccountRecord{
		Number:             a.Number(),
		Client:             NewClientRecord(a.Owner()),
		PerWithdrawalLimit: a.PerWithdrawalLimit(),
		MaxWithdrawalCount: a.MaxWithdrawalCount(),
	}
}

// ToAccount reconstructs the account bound to owner with a fresh ledger and
// zero balance. The agency code is configuration, not persisted state.
func (r AccountRecord) ToAccount(owner *models.PhysicalPersonClient, agency string) *models.CheckingAccount {
	return models.NewCheckingAccount(r.Number, agency, owner, r.PerWithdrawalLimit, r.MaxWithdrawalCount)
}

// AccountRegistryFile is the on-disk layout of the account registry.
type AccountRegistryFile struct {
	NextAccountNumber int             `json:"nextAccountNumber"`
	Accounts          []AccountRecord `json:"accounts"`
}
