package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
	storagetxn "github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type                 string   `json:"type" required:"true" enum:"expense,income,transfer" doc:"Transaction type"`
	Amount               int64    `json:"amount" required:"true" minimum:"1" doc:"Positive amount in minor units"`
	AccountID            string   `json:"accountId" required:"true" doc:"Source account UUID"`
	DestinationAccountID string   `json:"destinationAccountId,omitempty" doc:"Destination account UUID, required for transfers"`
	CategoryID           string   `json:"categoryId,omitempty" doc:"Category UUID, required for expense and income"`
	TransactionDate      string   `json:"transactionDate,omitempty" doc:"RFC3339 transaction date, defaults to now"`
	Note                 string   `json:"note,omitempty" doc:"Free-form note"`
	Tags                 []string `json:"tags,omitempty" doc:"Tags"`
	RelatedIDs           []string `json:"relatedIds,omitempty" doc:"Related transaction UUIDs"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transactions",
		Summary:     "Create transaction",
		Description: "Creates a new transaction and applies its balance effect.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (*storagetxn.TransactionCreate, error) {
	txnType, ok := typeFromString(input.Body.Type)
	if !ok {
		return nil, huma.NewError(http.StatusBadRequest, "invalid type")
	}
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
	}

	create := &storagetxn.TransactionCreate{
		Type:      txnType,
		Amount:    input.Body.Amount,
		AccountID: accountID,
		Note:      input.Body.Note,
		Tags:      input.Body.Tags,
	}

	if input.Body.DestinationAccountID != "" {
		destinationID, err := uuid.FromString(input.Body.DestinationAccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid destinationAccountId", err)
		}
		create.DestinationAccountID = &destinationID
	}

	if input.Body.CategoryID != "" {
		categoryID, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
		}
		create.CategoryID = &categoryID
	}

	if input.Body.TransactionDate != "" {
		transactionDate, err := time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
		create.TransactionDate = transactionDate
	}

	for _, raw := range input.Body.RelatedIDs {
		relatedID, err := uuid.FromString(raw)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid relatedIds entry", err)
		}
		create.RelatedIDs = append(create.RelatedIDs, relatedID)
	}

	return create, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{Create: create}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromError("failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", action.Created.ID.String())
	}

	created := service.TransactionFromStorage(action.Created)
	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromService(&created),
	}, nil
}
