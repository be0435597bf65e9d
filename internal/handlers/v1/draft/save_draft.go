package draft

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/draft"
)

// SaveDraftBody is the request body for staging a bulk edit.
type SaveDraftBody struct {
	Updates []Entry `json:"updates" required:"true" doc:"Staged edits, applied in order at commit time"`
}

// SaveDraftInput is the Huma input for saving a draft.
type SaveDraftInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller identity the draft is keyed by"`
	Body   SaveDraftBody
}

// SaveDraftResponse is the response body for saving a draft.
type SaveDraftResponse struct {
	EntryCount int    `json:"entryCount" doc:"Number of staged entries"`
	CreatedAt  string `json:"createdAt" doc:"RFC3339 creation time"`
	ExpiresAt  string `json:"expiresAt" doc:"RFC3339 expiry time"`
}

// SaveDraftOutput is the Huma output for saving a draft.
type SaveDraftOutput struct {
	Body SaveDraftResponse
}

// draftTTL provides the configured draft lifetime.
type draftTTL interface {
	TTL() time.Duration
}

// SaveDraftHandler handles PATCH /v1/transactions/bulk/draft.
type SaveDraftHandler struct {
	Operator     actionProcessor
	DraftService draftTTL
}

// NewSaveDraftHandler creates a new SaveDraftHandler.
func NewSaveDraftHandler(op actionProcessor, svc draftTTL) *SaveDraftHandler {
	return &SaveDraftHandler{Operator: op, DraftService: svc}
}

// Register registers the save draft endpoint with the Huma API.
func (h *SaveDraftHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "save-draft",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/bulk/draft",
		Summary:     "Save bulk edit draft",
		Description: "Stages a bulk edit for the caller, overwriting any existing draft. Nothing is applied until commit.",
		Tags:        []string{"Bulk edits"},
	}, h.handle)
}

func (h *SaveDraftHandler) handle(ctx context.Context, input *SaveDraftInput) (*SaveDraftOutput, error) {
	logData := logging.GetLogData(ctx)

	// Oversized drafts are a 400 before anything is parsed or written.
	if len(input.Body.Updates) > draft.MaxEntries {
		return nil, huma.NewError(http.StatusBadRequest,
			fmt.Sprintf("draft exceeds %d entries", draft.MaxEntries))
	}

	entries := make([]draft.Entry, len(input.Body.Updates))
	for i := range input.Body.Updates {
		entry, err := parseEntry(&input.Body.Updates[i])
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	action := &actions.SaveDraft{
		UserID:  input.UserID,
		Entries: entries,
		TTL:     h.DraftService.TTL(),
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromError("failed to save draft", err)
	}

	if logData != nil {
		logData.AddData("draftEntryCount", len(entries))
	}

	return &SaveDraftOutput{
		Body: SaveDraftResponse{
			EntryCount: len(action.Saved.Entries),
			CreatedAt:  action.Saved.CreatedAt.Format(time.RFC3339),
			ExpiresAt:  action.Saved.ExpiresAt.Format(time.RFC3339),
		},
	}, nil
}
