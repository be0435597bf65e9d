package draft

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CommitDraftInput is the Huma input for committing the caller's draft.
type CommitDraftInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Caller identity the draft is keyed by"`
}

// CommitDraftResponse is the response body for a fully applied commit.
type CommitDraftResponse struct {
	SuccessCount int      `json:"successCount" doc:"Number of applied entries"`
	UpdatedIDs   []string `json:"updatedIds" doc:"Transaction UUIDs updated, in draft order"`
	DurationMs   int64    `json:"durationMs" doc:"Commit duration in milliseconds"`
}

// CommitDraftOutput is the Huma output for committing a draft.
type CommitDraftOutput struct {
	Body CommitDraftResponse
}

// CommitDraftHandler handles POST /v1/transactions/bulk/draft/commit.
type CommitDraftHandler struct {
	Operator actionProcessor
}

// NewCommitDraftHandler creates a new CommitDraftHandler.
func NewCommitDraftHandler(op actionProcessor) *CommitDraftHandler {
	return &CommitDraftHandler{Operator: op}
}

// Register registers the commit draft endpoint with the Huma API.
func (h *CommitDraftHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "commit-draft",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/bulk/draft/commit",
		Summary:     "Commit bulk edit draft",
		Description: "Applies every staged entry atomically. Any invalid entry aborts the whole commit and leaves the draft staged.",
		Tags:        []string{"Bulk edits"},
	}, h.handle)
}

func (h *CommitDraftHandler) handle(ctx context.Context, input *CommitDraftInput) (*CommitDraftOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.CommitDraft{UserID: input.UserID}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("commitDraftMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromError("failed to commit draft", err)
	}

	if logData != nil {
		logData.AddData("committedCount", action.SuccessCount)
	}

	updatedIDs := make([]string, len(action.UpdatedIDs))
	for i, id := range action.UpdatedIDs {
		updatedIDs[i] = id.String()
	}

	return &CommitDraftOutput{
		Body: CommitDraftResponse{
			SuccessCount: action.SuccessCount,
			UpdatedIDs:   updatedIDs,
			DurationMs:   action.Duration.Milliseconds(),
		},
	}, nil
}
