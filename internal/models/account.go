package models

import "github.com/shopspring/decimal"

// Default limits applied to new checking accounts when no explicit
// configuration is given.
var (
	DefaultPerWithdrawalLimit = decimal.NewFromInt(500)
)

// DefaultMaxWithdrawalCount is the default number of withdrawals a checking
// account accepts before rejecting further ones.
const DefaultMaxWithdrawalCount = 3

// BankAccount is the capability surface a transaction operates against.
// Variants override Withdraw with additional pre-checks.
type BankAccount interface {
	Number() int
	Agency() string
	Balance() decimal.Decimal
	Owner() *PhysicalPersonClient
	Ledger() *Ledger
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

// Account holds the balance, identity, and ledger shared by every account
// variant. The balance only changes through a successful Deposit or
// Withdraw and never goes negative.
type Account struct {
	number  int
	agency  string
	balance decimal.Decimal
	owner   *PhysicalPersonClient
	ledger  Ledger
}

// NewAccount creates an account bound to its owning client with a zero
// balance and an empty ledger. The account number is assigned by the
// caller and never reused.
func NewAccount(number int, agency string, owner *PhysicalPersonClient) *Account {
	return &Account{
		number: number,
		agency: agency,
		owner:  owner,
	}
}

// Number returns the system-unique account number.
func (a *Account) Number() int {
	return a.number
}

// Agency returns the fixed branch code the account belongs to.
func (a *Account) Agency() string {
	return a.agency
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Owner returns the client the account belongs to.
func (a *Account) Owner() *PhysicalPersonClient {
	return a.owner
}

// Ledger returns the account's history for reporting and appends.
func (a *Account) Ledger() *Ledger {
	return &a.ledger
}

// Deposit increases the balance by amount. It fails with ErrInvalidAmount
// for non-positive amounts and otherwise always succeeds.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw decreases the balance by amount. Insufficiency is checked before
// amount validity, so a non-positive request against any balance reports
// ErrInvalidAmount while an oversized one reports ErrInsufficientFunds.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckingAccount is an account with two immutable limits: a maximum amount
// per single withdrawal and a maximum count of withdrawals it will ever
// accept. Both are fixed at creation.
type CheckingAccount struct {
	Account
	perWithdrawalLimit decimal.Decimal
	maxWithdrawalCount int
}

// NewCheckingAccount creates a checking account with the given limits.
func NewCheckingAccount(number int, agency string, owner *PhysicalPersonClient, perWithdrawalLimit decimal.Decimal, maxWithdrawalCount int) *CheckingAccount {
	return &CheckingAccount{
		Account:            *NewAccount(number, agency, owner),
		perWithdrawalLimit: perWithdrawalLimit,
		maxWithdrawalCount: maxWithdrawalCount,
	}
}

// PerWithdrawalLimit returns the maximum amount allowed in one withdrawal.
func (c *CheckingAccount) PerWithdrawalLimit() decimal.Decimal {
	return c.perWithdrawalLimit
}

// MaxWithdrawalCount returns the maximum number of withdrawals accepted.
func (c *CheckingAccount) MaxWithdrawalCount() int {
	return c.maxWithdrawalCount
}

// Withdraw applies the checking account pre-checks before the base rule:
// first the withdrawal count limit against the full ledger history, then
// the per-withdrawal amount limit. A failed pre-check leaves balance and
// ledger untouched.
func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if c.ledger.WithdrawalCount()+1 > c.maxWithdrawalCount {
		return ErrWithdrawalCountExceeded
	}
	if amount.GreaterThan(c.perWithdrawalLimit) {
		return ErrWithdrawalLimitExceeded
	}
	return c.Account.Withdraw(amount)
}
