package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
)

// UpdateTransactionBody is the request body for a partial update. Absent
// fields keep their current value. The transaction type cannot change.
type UpdateTransactionBody struct {
	Amount               *int64    `json:"amount,omitempty" minimum:"1" doc:"Positive amount in minor units"`
	AccountID            *string   `json:"accountId,omitempty" doc:"Source account UUID"`
	DestinationAccountID *string   `json:"destinationAccountId,omitempty" doc:"Destination account UUID, transfers only"`
	CategoryID           *string   `json:"categoryId,omitempty" doc:"Category UUID"`
	TransactionDate      *string   `json:"transactionDate,omitempty" doc:"RFC3339 transaction date"`
	Note                 *string   `json:"note,omitempty" doc:"Free-form note"`
	Tags                 *[]string `json:"tags,omitempty" doc:"Tags, replaces the existing set"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// UpdateTransactionHandler handles PATCH /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	Operator actionProcessor
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op actionProcessor) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Operator: op}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Partially updates a transaction, reversing the old balance effect and applying the new one atomically.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parsePatchBody converts the wire body into a ledger patch.
func parsePatchBody(body *UpdateTransactionBody) (*ledger.Patch, error) {
	patch := &ledger.Patch{
		Amount: body.Amount,
		Note:   body.Note,
		Tags:   body.Tags,
	}

	if body.AccountID != nil {
		accountID, err := uuid.FromString(*body.AccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
		}
		patch.AccountID = &accountID
	}
	if body.DestinationAccountID != nil {
		destinationID, err := uuid.FromString(*body.DestinationAccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid destinationAccountId", err)
		}
		patch.DestinationAccountID = &destinationID
	}
	if body.CategoryID != nil {
		categoryID, err := uuid.FromString(*body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
		}
		patch.CategoryID = &categoryID
	}
	if body.TransactionDate != nil {
		transactionDate, err := time.Parse(time.RFC3339, *body.TransactionDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
		patch.TransactionDate = &transactionDate
	}

	return patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	patch, err := parsePatchBody(&input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{ID: id, Patch: patch}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromError("failed to update transaction", err)
	}

	updated := service.TransactionFromStorage(action.Updated)
	return &UpdateTransactionOutput{Body: fromService(&updated)}, nil
}
