package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/draft"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

func TestSaveDraftStagesWithoutTouchingTransactions(t *testing.T) {
	writer, state := newFakeWriter()
	accountID := state.addAccount(4900)
	transactionID := state.addTransaction(&transaction.Transaction{
		Type:      transaction.TypeExpense,
		Amount:    100,
		AccountID: accountID,
	})

	amount := int64(200)
	action := &SaveDraft{
		UserID:  "user-1",
		Entries: []draft.Entry{{TransactionID: transactionID, Amount: &amount}},
		TTL:     time.Hour,
	}
	require.NoError(t, action.Perform(context.Background(), writer))

	require.NotNil(t, action.Saved)
	assert.Equal(t, "user-1", action.Saved.UserID)
	assert.Len(t, action.Saved.Entries, 1)
	assert.Equal(t, time.Hour, action.Saved.ExpiresAt.Sub(action.Saved.CreatedAt))

	staged := state.drafts["user-1"]
	require.NotNil(t, staged)
	assert.Len(t, staged.Entries, 1)

	// Staging applies nothing.
	assert.Equal(t, int64(100), state.transactions[transactionID].Amount)
	assert.Equal(t, int64(4900), state.accounts[accountID].Balance)
}

func TestSaveDraftOverwritesExisting(t *testing.T) {
	writer, state := newFakeWriter()
	first := uuid.Must(uuid.NewV4())
	second := uuid.Must(uuid.NewV4())

	note := "first"
	require.NoError(t, (&SaveDraft{
		UserID:  "user-1",
		Entries: []draft.Entry{{TransactionID: first, Note: &note}},
		TTL:     time.Hour,
	}).Perform(context.Background(), writer))

	amount := int64(300)
	require.NoError(t, (&SaveDraft{
		UserID:  "user-1",
		Entries: []draft.Entry{{TransactionID: second, Amount: &amount}},
		TTL:     time.Hour,
	}).Perform(context.Background(), writer))

	require.Len(t, state.drafts, 1)
	staged := state.drafts["user-1"]
	require.Len(t, staged.Entries, 1)
	assert.Equal(t, second, staged.Entries[0].TransactionID)
	assert.Nil(t, staged.Entries[0].Note)
}

func TestSaveDraftAtCapacity(t *testing.T) {
	writer, state := newFakeWriter()

	entries := make([]draft.Entry, draft.MaxEntries)
	for i := range entries {
		entries[i] = draft.Entry{TransactionID: uuid.Must(uuid.NewV4())}
	}

	action := &SaveDraft{UserID: "user-1", Entries: entries, TTL: time.Hour}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Len(t, state.drafts["user-1"].Entries, draft.MaxEntries)
}

func TestSaveDraftOversizedRejected(t *testing.T) {
	writer, state := newFakeWriter()

	entries := make([]draft.Entry, draft.MaxEntries+1)
	for i := range entries {
		entries[i] = draft.Entry{TransactionID: uuid.Must(uuid.NewV4())}
	}

	action := &SaveDraft{UserID: "user-1", Entries: entries, TTL: time.Hour}
	err := action.Perform(context.Background(), writer)
	require.Error(t, err)
	assert.True(t, ledger.IsValidation(err))
	assert.Empty(t, state.drafts)
}
