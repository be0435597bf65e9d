package draft

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

func newDeleteTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteDraftHandler(op).Register(api)
	return api
}

func TestHTTP_DeleteDraft_Success(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(action actions.IAction) bool {
		del, ok := action.(*actions.DeleteDraft)
		return ok && del.UserID == "user-1"
	})).Return(nil)

	resp := newDeleteTestAPI(t, op).Delete("/v1/transactions/bulk/draft", userHeader("user-1"))

	assert.Equal(t, http.StatusNoContent, resp.Code)
	op.AssertExpectations(t)
}

func TestHTTP_DeleteDraft_StorageFailure(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	resp := newDeleteTestAPI(t, op).Delete("/v1/transactions/bulk/draft", userHeader("user-1"))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
