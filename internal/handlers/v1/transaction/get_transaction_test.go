package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/service"
	storagetxn "github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// mockTransactionGetter is a mock for transactionGetter.
type mockTransactionGetter struct {
	mock.Mock
}

func (m *mockTransactionGetter) GetTransaction(ctx context.Context, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func newGetTestAPI(t *testing.T, svc transactionGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_GetTransaction_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	svc := new(mockTransactionGetter)
	svc.On("GetTransaction", mock.Anything, id).Return(&service.Transaction{
		ID:        id,
		Type:      storagetxn.TypeIncome,
		Amount:    4200,
		AccountID: accountID,
		Note:      "salary",
	}, nil)

	resp := newGetTestAPI(t, svc).Get("/v1/transactions/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, "income", body.Type)
	assert.Equal(t, int64(4200), body.Amount)
	svc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	svc := new(mockTransactionGetter)
	svc.On("GetTransaction", mock.Anything, id).
		Return(nil, ledger.NewNotFound("transaction", id.String()))

	resp := newGetTestAPI(t, svc).Get("/v1/transactions/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetTransaction_BadID(t *testing.T) {
	svc := new(mockTransactionGetter)

	resp := newGetTestAPI(t, svc).Get("/v1/transactions/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "GetTransaction")
}
