package models

import "time"

// DailyTransactionQuota caps how many transactions of any kind a single
// account accepts per calendar day.
const DailyTransactionQuota = 10

// Client owns an ordered set of accounts, in account-opening order, and
// mediates every transaction request against the daily quota before the
// transaction reaches the account.
type Client struct {
	address  string
	accounts []BankAccount
}

// Address returns the client's postal address.
func (c *Client) Address() string {
	return c.address
}

// AddAccount appends an account to the client's owned list. Account number
// uniqueness is the registry's concern, not checked here.
func (c *Client) AddAccount(acct BankAccount) {
	c.accounts = append(c.accounts, acct)
}

// Accounts returns the owned accounts in opening order.
func (c *Client) Accounts() []BankAccount {
	out := make([]BankAccount, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// RequestTransaction enforces the daily quota on the target account and
// then lets the transaction apply itself. Transactions of every kind
// recorded today on that account count against the quota; a rejected
// request mutates nothing.
func (c *Client) RequestTransaction(acct BankAccount, tx Transaction, now time.Time) error {
	if len(acct.Ledger().RecordsOnDate(now)) >= DailyTransactionQuota {
		return ErrDailyQuotaExceeded
	}
	return tx.Apply(acct, now)
}

// PhysicalPersonClient is a natural-person client identified by a tax id,
// the external lookup key. Tax id uniqueness is enforced by the client
// registry before construction.
type PhysicalPersonClient struct {
	Client
	taxID     string
	name      string
	birthDate string
}

// NewPhysicalPersonClient constructs a client from its registration data.
// The birth date is kept as entered (DD/MM/YYYY).
func NewPhysicalPersonClient(address, taxID, name, birthDate string) *PhysicalPersonClient {
	return &PhysicalPersonClient{
		Client:    Client{address: address},
		taxID:     taxID,
		name:      name,
		birthDate: birthDate,
	}
}

// TaxID returns the unique natural-person identifier.
func (p *PhysicalPersonClient) TaxID() string {
	return p.taxID
}

// Name returns the client's full name.
func (p *PhysicalPersonClient) Name() string {
	return p.name
}

// BirthDate returns the birth date as registered.
func (p *PhysicalPersonClient) BirthDate() string {
	return p.birthDate
}
