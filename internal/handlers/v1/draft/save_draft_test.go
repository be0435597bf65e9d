package draft

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	storagedraft "github.com/carson-networks/ledger-server/internal/storage/draft"
)

func newSaveTestAPI(t *testing.T, op actionProcessor, ttl time.Duration) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSaveDraftHandler(op, staticTTL(ttl)).Register(api)
	return api
}

func userHeader(userID string) string {
	return "X-User-ID: " + userID
}

func TestHTTP_SaveDraft_Success(t *testing.T) {
	transactionID := uuid.Must(uuid.NewV4())
	now := time.Now().UTC().Truncate(time.Second)
	amount := int64(2500)

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(action actions.IAction) bool {
		save, ok := action.(*actions.SaveDraft)
		return ok && save.UserID == "user-1" && len(save.Entries) == 1 &&
			save.Entries[0].TransactionID == transactionID && save.TTL == time.Hour
	})).Run(func(args mock.Arguments) {
		action := args.Get(1).(*actions.SaveDraft)
		action.Saved = &storagedraft.Draft{
			UserID:    "user-1",
			Entries:   action.Entries,
			CreatedAt: now,
			ExpiresAt: now.Add(time.Hour),
		}
	}).Return(nil)

	resp := newSaveTestAPI(t, op, time.Hour).Patch("/v1/transactions/bulk/draft",
		userHeader("user-1"),
		SaveDraftBody{Updates: []Entry{{ID: transactionID.String(), Amount: &amount}}},
	)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SaveDraftResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.EntryCount)
	assert.Equal(t, now.Format(time.RFC3339), body.CreatedAt)
	assert.Equal(t, now.Add(time.Hour).Format(time.RFC3339), body.ExpiresAt)
	op.AssertExpectations(t)
}

func TestHTTP_SaveDraft_AtCapacityAccepted(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	updates := make([]Entry, storagedraft.MaxEntries)
	for i := range updates {
		updates[i] = Entry{ID: uuid.Must(uuid.NewV4()).String()}
	}

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(action actions.IAction) bool {
		save, ok := action.(*actions.SaveDraft)
		return ok && len(save.Entries) == storagedraft.MaxEntries
	})).Run(func(args mock.Arguments) {
		action := args.Get(1).(*actions.SaveDraft)
		action.Saved = &storagedraft.Draft{
			UserID:    "user-1",
			Entries:   action.Entries,
			CreatedAt: now,
			ExpiresAt: now.Add(time.Hour),
		}
	}).Return(nil)

	resp := newSaveTestAPI(t, op, time.Hour).Patch("/v1/transactions/bulk/draft",
		userHeader("user-1"),
		SaveDraftBody{Updates: updates},
	)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SaveDraftResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, storagedraft.MaxEntries, body.EntryCount)
	op.AssertExpectations(t)
}

func TestHTTP_SaveDraft_ValidationErrorMapsTo422(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).
		Return(ledger.NewValidation("draft exceeds 500 entries"))

	resp := newSaveTestAPI(t, op, time.Hour).Patch("/v1/transactions/bulk/draft",
		userHeader("user-1"),
		SaveDraftBody{Updates: []Entry{{ID: uuid.Must(uuid.NewV4()).String()}}},
	)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_SaveDraft_OversizedRejected(t *testing.T) {
	updates := make([]Entry, storagedraft.MaxEntries+1)
	for i := range updates {
		updates[i] = Entry{ID: uuid.Must(uuid.NewV4()).String()}
	}

	op := new(mockOperator)

	resp := newSaveTestAPI(t, op, time.Hour).Patch("/v1/transactions/bulk/draft",
		userHeader("user-1"),
		SaveDraftBody{Updates: updates},
	)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	op.AssertNotCalled(t, "Process")
}

func TestHTTP_SaveDraft_BadEntryID(t *testing.T) {
	op := new(mockOperator)

	resp := newSaveTestAPI(t, op, time.Hour).Patch("/v1/transactions/bulk/draft",
		userHeader("user-1"),
		SaveDraftBody{Updates: []Entry{{ID: "not-a-uuid"}}},
	)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	op.AssertNotCalled(t, "Process")
}

func TestHTTP_SaveDraft_MissingUserHeader(t *testing.T) {
	op := new(mockOperator)

	resp := newSaveTestAPI(t, op, time.Hour).Patch("/v1/transactions/bulk/draft",
		SaveDraftBody{Updates: []Entry{}},
	)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	op.AssertNotCalled(t, "Process")
}
