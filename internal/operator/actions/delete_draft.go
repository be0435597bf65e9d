package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeleteDraft discards the user's draft. Idempotent: deleting an absent
// draft succeeds.
type DeleteDraft struct {
	UserID string
}

func (d *DeleteDraft) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Draft.Delete(ctx, d.UserID)
}
