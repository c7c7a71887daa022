package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a transient movement request that knows how to apply
// itself to an account. Only its effect, a TransactionRecord, is persisted.
type Transaction interface {
	Kind() TransactionKind
	Amount() decimal.Decimal
	Apply(acct BankAccount, now time.Time) error
}

// Deposit requests that an amount be credited to an account.
type Deposit struct {
	amount decimal.Decimal
}

// NewDeposit creates a deposit request for the given amount.
func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (d Deposit) Kind() TransactionKind {
	return KindDeposit
}

func (d Deposit) Amount() decimal.Decimal {
	return d.amount
}

// Apply credits the amount and, on success, appends a Deposit record to the
// account's ledger. On failure nothing is mutated.
func (d Deposit) Apply(acct BankAccount, now time.Time) error {
	if err := acct.Deposit(d.amount); err != nil {
		return err
	}
	acct.Ledger().Append(KindDeposit, d.amount, now)
	return nil
}

// Withdrawal requests that an amount be debited from an account.
type Withdrawal struct {
	amount decimal.Decimal
}

// NewWithdrawal creates a withdrawal request for the given amount.
func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (w Withdrawal) Kind() TransactionKind {
	return KindWithdrawal
}

func (w Withdrawal) Amount() decimal.Decimal {
	return w.amount
}

// Apply debits the amount under the account's withdrawal rules and, on
// success, appends a Withdrawal record to the ledger.
func (w Withdrawal) Apply(acct BankAccount, now time.Time) error {
	if err := acct.Withdraw(w.amount); err != nil {
		return err
	}
	acct.Ledger().Append(KindWithdrawal, w.amount, now)
	return nil
}

// Interface checks
var (
	_ Transaction = Deposit{}
	_ Transaction = Withdrawal{}
	_ BankAccount = (*Account)(nil)
	_ BankAccount = (*CheckingAccount)(nil)
)
