package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmaciel/branchbank/internal/models"
)

func TestClientRepositoryRegister(t *testing.T) {
	repo := NewClientRepository()
	client := newClient()

	require.NoError(t, repo.Register(client))
	assert.True(t, repo.Exists(client.TaxID()))

	t.Run("duplicate tax id is rejected", func(t *testing.T) {
		dup := models.NewPhysicalPersonClient("2 Side St", client.TaxID(), "Someone Else", "02/03/1991")
		assert.ErrorIs(t, repo.Register(dup), models.ErrDuplicateClient)
		assert.Len(t, repo.All(), 1)
	})

	t.Run("find by tax id", func(t *testing.T) {
		found, err := repo.FindByTaxID(client.TaxID())
		require.NoError(t, err)
		assert.Same(t, client, found)

		_, err = repo.FindByTaxID("00000000000")
		assert.ErrorIs(t, err, models.ErrClientNotFound)
	})
}

func TestClientRepositoryOrderAndRestore(t *testing.T) {
	repo := NewClientRepository()
	first := models.NewPhysicalPersonClient("1 Main St", "11111111111", "First", "01/01/1980")
	second := models.NewPhysicalPersonClient("2 Side St", "22222222222", "Second", "02/02/1982")
	require.NoError(t, repo.Register(first))
	require.NoError(t, repo.Register(second))

	records := repo.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "11111111111", records[0].TaxID)
	assert.Equal(t, "22222222222", records[1].TaxID)

	restored := NewClientRepository()
	restored.Restore(records)
	all := restored.All()
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Name())
	assert.Equal(t, "Second", all[1].Name())
}

func TestAccountRepositoryNumbering(t *testing.T) {
	repo := NewAccountRepository()
	assert.Equal(t, 1, repo.NextNumber())
	assert.Equal(t, 2, repo.NextNumber())

	// Numbers are never reused, even across snapshots.
	file := repo.File()
	assert.Equal(t, 3, file.NextAccountNumber)

	restored := NewAccountRepository()
	restored.Restore(file, NewClientRepository(), "0001")
	assert.Equal(t, 3, restored.NextNumber())
}

func TestAccountRepositoryRestoreAttachesOwners(t *testing.T) {
	clients := NewClientRepository()
	owner := newClient()
	require.NoError(t, clients.Register(owner))

	accounts := NewAccountRepository()
	acct := models.NewCheckingAccount(accounts.NextNumber(), "0001", owner, models.DefaultPerWithdrawalLimit, models.DefaultMaxWithdrawalCount)
	accounts.Add(acct)
	owner.AddAccount(acct)

	restoredClients := NewClientRepository()
	restoredClients.Restore(clients.Records())
	restoredAccounts := NewAccountRepository()
	restoredAccounts.Restore(accounts.File(), restoredClients, "0001")

	all := restoredAccounts.All()
	require.Len(t, all, 1)

	restoredOwner, err := restoredClients.FindByTaxID(owner.TaxID())
	require.NoError(t, err)
	assert.Same(t, restoredOwner, all[0].Owner())
	require.Len(t, restoredOwner.Accounts(), 1)
	assert.Equal(t, all[0].Number(), restoredOwner.Accounts()[0].Number())
}
