package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// CommitDraft applies every staged entry through the ledger engine inside the
// operator's single database transaction. The first failing entry aborts the
// whole commit: the operator rolls the transaction back, so zero entries are
// applied and the draft stays staged for the caller to fix or discard.
type CommitDraft struct {
	UserID string

	// Set by Perform.
	SuccessCount int
	UpdatedIDs   []uuid.UUID
	Duration     time.Duration
}

func (c *CommitDraft) Perform(ctx context.Context, writer *storage.Writer) error {
	start := time.Now()

	// The row lock serializes this commit against a concurrent save or
	// commit for the same user.
	staged, err := writer.Draft.FindByUserForUpdate(ctx, c.UserID)
	if err != nil {
		return err
	}
	if staged == nil || staged.Expired(time.Now()) {
		return ledger.NewNotFound("draft", c.UserID)
	}

	updatedIDs, err := ledger.CommitEntries(ctx, writer, staged.Entries)
	if err != nil {
		return err
	}

	if err := writer.Draft.Delete(ctx, c.UserID); err != nil {
		return err
	}

	c.SuccessCount = len(updatedIDs)
	c.UpdatedIDs = updatedIDs
	c.Duration = time.Since(start)
	return nil
}
