package repository

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmaciel/branchbank/internal/models"
)

func newClient() *models.PhysicalPersonClient {
	return models.NewPhysicalPersonClient("1 Main St - Downtown - Springfield/SP", "12345678900", "Ana Souza", "01/02/1990")
}

func TestClientRecordRoundTrip(t *testing.T) {
	original := newClient()

	record := NewClientRecord(original)
	restored := record.ToClient()

	assert.Equal(t, original.Address(), restored.Address())
	assert.Equal(t, original.TaxID(), restored.TaxID())
	assert.Equal(t, original.Name(), restored.Name())
	assert.Equal(t, original.BirthDate(), restored.BirthDate())
}

func TestClientRecordFieldNames(t *testing.T) {
	data, err := json.Marshal(NewClientRecord(newClient()))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	// Field names are a compatibility contract with previously written files.
	for _, key := range []string{"address", "taxId", "name", "birthDate"} {
		assert.Contains(t, fields, key)
	}
	assert.Len(t, fields, 4)
}

func TestAccountRecordRoundTrip(t *testing.T) {
	owner := newClient()
	acct := models.NewCheckingAccount(3, "0001", owner, decimal.NewFromInt(750), 5)

	record := NewAccountRecord(acct)
	restored := record.ToAccount(owner, "0001")

	assert.Equal(t, acct.Number(), restored.Number())
	assert.Equal(t, acct.Agency(), restored.Agency())
	assert.True(t, restored.PerWithdrawalLimit().Equal(decimal.NewFromInt(750)))
	assert.Equal(t, 5, restored.MaxWithdrawalCount())
	assert.Same(t, owner, restored.Owner())
	assert.Equal(t, "12345678900", record.Client.TaxID)

	// Balance and ledger are session state: restored accounts start fresh.
	assert.True(t, restored.Balance().IsZero())
	assert.Zero(t, restored.Ledger().Len())
}

func TestAccountRegistryFileFieldNames(t *testing.T) {
	acct := models.NewCheckingAccount(1, "0001", newClient(), decimal.NewFromInt(500), 3)
	file := AccountRegistryFile{
		NextAccountNumber: 2,
		Accounts:          []AccountRecord{NewAccountRecord(acct)},
	}

	data, err := json.Marshal(file)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Contains(t, fields, "nextAccountNumber")
	assert.Contains(t, fields, "accounts")

	accounts, ok := fields["accounts"].([]any)
	require.True(t, ok)
	require.Len(t, accounts, 1)
	entry, ok := accounts[0].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"number", "client", "perWithdrawalLimit", "maxWithdrawalCount"} {
		assert.Contains(t, entry, key)
	}
}
