package ledger

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/draft"
)

// CommitEntries applies staged draft entries in order through Update. The
// first failing entry aborts the batch; the caller's transaction scope is
// what makes the abort leave zero entries applied.
func CommitEntries(ctx context.Context, store Store, entries []draft.Entry) ([]uuid.UUID, error) {
	updatedIDs := make([]uuid.UUID, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		patch := &Patch{
			Amount:               entry.Amount,
			AccountID:            entry.AccountID,
			DestinationAccountID: entry.DestinationAccountID,
			CategoryID:           entry.CategoryID,
			TransactionDate:      entry.TransactionDate,
			Note:                 entry.Note,
			Tags:                 entry.Tags,
		}
		if _, err := Update(ctx, store, entry.TransactionID, patch); err != nil {
			return nil, err
		}
		updatedIDs = append(updatedIDs, entry.TransactionID)
	}
	return updatedIDs, nil
}
