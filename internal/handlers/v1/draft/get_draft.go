package draft

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetDraftInput is the Huma input for fetching the caller's draft.
type GetDraftInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller identity the draft is keyed by"`
}

// GetDraftResponse is the response body for fetching a draft.
type GetDraftResponse struct {
	Updates   []Entry `json:"updates" doc:"Staged edits"`
	CreatedAt string  `json:"createdAt" doc:"RFC3339 creation time"`
	ExpiresAt string  `json:"expiresAt" doc:"RFC3339 expiry time"`
}

// GetDraftOutput is the Huma output for fetching a draft.
type GetDraftOutput struct {
	Body GetDraftResponse
}

// draftGetter is the interface for reading drafts.
type draftGetter interface {
	GetDraft(ctx context.Context, userID string) (*service.Draft, error)
}

// GetDraftHandler handles GET /v1/transactions/bulk/draft.
type GetDraftHandler struct {
	DraftService draftGetter
}

// NewGetDraftHandler creates a new GetDraftHandler.
func NewGetDraftHandler(svc draftGetter) *GetDraftHandler {
	return &GetDraftHandler{DraftService: svc}
}

// Register registers the get draft endpoint with the Huma API.
func (h *GetDraftHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-draft",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/bulk/draft",
		Summary:     "Get bulk edit draft",
		Description: "Returns the caller's staged draft. An expired draft reads as absent.",
		Tags:        []string{"Bulk edits"},
	}, h.handle)
}

func (h *GetDraftHandler) handle(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error) {
	staged, err := h.DraftService.GetDraft(ctx, input.UserID)
	if err != nil {
		return nil, apierror.FromError("failed to get draft", err)
	}

	resp := GetDraftResponse{
		Updates:   make([]Entry, len(staged.Entries)),
		CreatedAt: staged.CreatedAt.Format(time.RFC3339),
		ExpiresAt: staged.ExpiresAt.Format(time.RFC3339),
	}
	for i := range staged.Entries {
		resp.Updates[i] = entryToWire(&staged.Entries[i])
	}

	return &GetDraftOutput{Body: resp}, nil
}
