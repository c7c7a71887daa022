package repository

import (
	"sync"

	"github.com/vmaciel/branchbank/internal/models"
)

// AccountRepository is the global account registry. It owns the monotonic
// account number counter; numbers are assigned once and never reused.
type AccountRepository struct {
	mu       sync.Mutex
	next     int
	accounts []*models.CheckingAccount
}

// NewAccountRepository creates an empty registry with the counter at 1.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{next: 1}
}

// NextNumber assigns the next account number and advances the counter.
func (r *AccountRepository) NextNumber() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.next
	r.next++
	return n
}

// Add registers an account. Number uniqueness is guaranteed by NextNumber
// assignment, not re-checked here.
func (r *AccountRepository) Add(acct *models.CheckingAccount) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = append(r.accounts, acct)
}

// All returns the registered accounts in creation order.
func (r *AccountRepository) All() []*models.CheckingAccount {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.CheckingAccount, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// File snapshots the registry into its on-disk layout.
func (r *AccountRepository) File() AccountRegistryFile {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := AccountRegistryFile{
		NextAccountNumber: r.next,
		Accounts:          make([]AccountRecord, 0, len(r.accounts)),
	}
	for _, a := range r.accounts {
		f.Accounts = append(f.Accounts, NewAccountRecord(a))
	}
	return f
}

// Restore rebuilds the registry from its on-disk layout, replacing any
// current state. Each account is attached to the registered client with the
// matching tax id so client and registry share one object; records whose
// owner is unknown fall back to the client embedded in the record.
func (r *AccountRepository) Restore(file AccountRegistryFile, clients *ClientRepository, agency string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next = file.NextAccountNumber
	if r.next < 1 {
		r.next = 1
	}
	r.accounts = nil
	for _, rec := range file.Accounts {
		owner, err := clients.FindByTaxID(rec.Client.TaxID)
		if err != nil {
			owner = rec.Client.ToClient()
		}
		acct := rec.ToAccount(owner, agency)
		owner.AddAccount(acct)
		r.accounts = append(r.accounts, acct)
	}
}
