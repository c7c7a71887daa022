package models

import (
	"fmt"
	"strings"
)

const catalogLineWidth = 50

// CatalogIterator walks an ordered sequence of accounts, producing one
// formatted summary per account in the given order. A single iterator makes
// one forward pass; create a new iterator over the same slice to restart.
type CatalogIterator struct {
	accounts []*CheckingAccount
	index    int
}

// NewCatalogIterator creates an iterator over the given accounts.
func NewCatalogIterator(accounts []*CheckingAccount) *CatalogIterator {
	return &CatalogIterator{accounts: accounts}
}

// Next returns the next formatted account summary. The second return value
// is false once the iterator is exhausted; exhaustion is a normal
// end-of-sequence signal, not an error.
func (it *CatalogIterator) Next() (string, bool) {
	if it.index >= len(it.accounts) {
		return "", false
	}
	acct := it.accounts[it.index]
	it.index++

	lines := []string{
		center(fmt.Sprintf(" ACCOUNT %d ", acct.Number()), "="),
		center(fmt.Sprintf("Agency: %s", acct.Agency()), " "),
		center(fmt.Sprintf("Tax ID: %s", acct.Owner().TaxID()), " "),
		center(fmt.Sprintf("Holder: %s", acct.Owner().Name()), " "),
		center(fmt.Sprintf("Balance: %s", acct.Balance().StringFixed(2)), " "),
		strings.Repeat("=", catalogLineWidth),
	}
	return strings.Join(lines, "\n"), true
}

// center pads s on both sides with pad up to the catalog line width.
func center(s, pad string) string {
	if len(s) >= catalogLineWidth {
		return s
	}
	total := catalogLineWidth - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(pad, left) + s + strings.Repeat(pad, right)
}
