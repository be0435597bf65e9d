package draft

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// DeleteDraftInput is the Huma input for discarding the caller's draft.
type DeleteDraftInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller identity the draft is keyed by"`
}

// DeleteDraftOutput is the Huma output for discarding a draft.
type DeleteDraftOutput struct {
	Status int
}

// DeleteDraftHandler handles DELETE /v1/transactions/bulk/draft.
type DeleteDraftHandler struct {
	Operator actionProcessor
}

// NewDeleteDraftHandler creates a new DeleteDraftHandler.
func NewDeleteDraftHandler(op actionProcessor) *DeleteDraftHandler {
	return &DeleteDraftHandler{Operator: op}
}

// Register registers the delete draft endpoint with the Huma API.
func (h *DeleteDraftHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-draft",
		Method:      http.MethodDelete,
		Path:        "/v1/transactions/bulk/draft",
		Summary:     "Discard bulk edit draft",
		Description: "Discards the caller's staged draft without applying anything.",
		Tags:        []string{"Bulk edits"},
	}, h.handle)
}

func (h *DeleteDraftHandler) handle(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error) {
	if err := h.Operator.Process(ctx, &actions.DeleteDraft{UserID: input.UserID}); err != nil {
		return nil, apierror.FromError("failed to delete draft", err)
	}
	return &DeleteDraftOutput{Status: http.StatusNoContent}, nil
}
