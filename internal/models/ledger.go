package models

import (
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind tags a ledger record with the movement that produced it
type TransactionKind string

const (
	KindDeposit    TransactionKind = "Deposit"
	KindWithdrawal TransactionKind = "Withdrawal"
)

// TransactionRecord is one immutable entry in an account's ledger, created
// only as the side effect of a successfully applied transaction.
type TransactionRecord struct {
	RecordedAt time.Time
	Kind       TransactionKind
	Amount     decimal.Decimal
	ID         uuid.UUID
}

// Ledger is the append-only history of accepted movements on one account.
// Records are never reordered, mutated, or deleted after append. A Ledger
// is owned by exactly one account.
type Ledger struct {
	records []TransactionRecord
}

// Append records an accepted movement at the given instant. Validation is
// the caller's responsibility; Append always succeeds.
func (l *Ledger) Append(kind TransactionKind, amount decimal.Decimal, now time.Time) {
	l.records = append(l.records, TransactionRecord{
		ID:         uuid.New(),
		Kind:       kind,
		Amount:     amount,
		RecordedAt: now,
	})
}

// Records returns a copy of the full history in insertion order.
func (l *Ledger) Records() []TransactionRecord {
	out := make([]TransactionRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len reports how many records the ledger holds.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Report yields records lazily in insertion order. An empty kindFilter
// yields every record; otherwise only records whose kind matches
// case-insensitively. Ranging over the returned sequence never mutates the
// ledger, and every range starts a fresh traversal from the beginning.
func (l *Ledger) Report(kindFilter string) iter.Seq[TransactionRecord] {
	return func(yield func(TransactionRecord) bool) {
		for _, r := range l.records {
			if kindFilter != "" && !strings.EqualFold(string(r.Kind), kindFilter) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// RecordsOnDate returns the records whose timestamp falls on the same
// calendar date as day, in insertion order. It backs both the daily
// statement and the daily transaction quota check.
func (l *Ledger) RecordsOnDate(day time.Time) []TransactionRecord {
	y, m, d := day.Date()
	var out []TransactionRecord
	for _, r := range l.records {
		ry, rm, rd := r.RecordedAt.Date()
		if ry == y && rm == m && rd == d {
			out = append(out, r)
		}
	}
	return out
}

// WithdrawalCount reports how many withdrawals the account has ever
// accepted, across the whole history.
func (l *Ledger) WithdrawalCount() int {
	n := 0
	for _, r := range l.records {
		if r.Kind == KindWithdrawal {
			n++
		}
	}
	return n
}
