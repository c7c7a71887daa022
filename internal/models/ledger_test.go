package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerAppend(t *testing.T) {
	var l Ledger
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	l.Append(KindDeposit, decimal.NewFromInt(100), now)
	l.Append(KindWithdrawal, decimal.NewFromInt(40), now.Add(time.Minute))

	records := l.Records()
	require.Len(t, records, 2)
	assert.Equal(t, KindDeposit, records[0].Kind)
	assert.True(t, records[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, now, records[0].RecordedAt)
	assert.Equal(t, KindWithdrawal, records[1].Kind)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestLedgerReport(t *testing.T) {
	var l Ledger
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	l.Append(KindDeposit, decimal.NewFromInt(100), now)
	l.Append(KindWithdrawal, decimal.NewFromInt(30), now.Add(time.Minute))
	l.Append(KindDeposit, decimal.NewFromInt(50), now.Add(2*time.Minute))

	t.Run("no filter yields all in insertion order", func(t *testing.T) {
		var kinds []TransactionKind
		for r := range l.Report("") {
			kinds = append(kinds, r.Kind)
		}
		assert.Equal(t, []TransactionKind{KindDeposit, KindWithdrawal, KindDeposit}, kinds)
	})

	t.Run("filter matches case-insensitively", func(t *testing.T) {
		var amounts []string
		for r := range l.Report("dEpOsIt") {
			amounts = append(amounts, r.Amount.String())
		}
		assert.Equal(t, []string{"100", "50"}, amounts)
	})

	t.Run("unknown kind yields nothing", func(t *testing.T) {
		count := 0
		for range l.Report("transfer") {
			count++
		}
		assert.Zero(t, count)
	})

	t.Run("report is restartable across calls", func(t *testing.T) {
		first := 0
		for range l.Report("withdrawal") {
			first++
		}
		second := 0
		for range l.Report("withdrawal") {
			second++
		}
		assert.Equal(t, 1, first)
		assert.Equal(t, first, second)
		assert.Equal(t, 3, l.Len())
	})
}

func TestLedgerRecordsOnDate(t *testing.T) {
	var l Ledger
	day1 := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 0, 0, 1, 0, time.UTC)

	l.Append(KindDeposit, decimal.NewFromInt(1), day1)
	l.Append(KindDeposit, decimal.NewFromInt(2), day2)
	l.Append(KindWithdrawal, decimal.NewFromInt(3), day2)

	onDay1 := l.RecordsOnDate(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	require.Len(t, onDay1, 1)
	assert.True(t, onDay1[0].Amount.Equal(decimal.NewFromInt(1)))

	onDay2 := l.RecordsOnDate(day2)
	require.Len(t, onDay2, 2)
	assert.True(t, onDay2[0].Amount.Equal(decimal.NewFromInt(2)))
	assert.True(t, onDay2[1].Amount.Equal(decimal.NewFromInt(3)))

	assert.Empty(t, l.RecordsOnDate(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)))
}

func TestLedgerWithdrawalCount(t *testing.T) {
	var l Ledger
	now := time.Now()

	assert.Zero(t, l.WithdrawalCount())

	l.Append(KindDeposit, decimal.NewFromInt(10), now)
	l.Append(KindWithdrawal, decimal.NewFromInt(5), now)
	l.Append(KindWithdrawal, decimal.NewFromInt(5), now.AddDate(0, 0, 1))

	// Counts the whole history, not just one day.
	assert.Equal(t, 2, l.WithdrawalCount())
}
