package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type UpdateTransaction struct {
	ID    uuid.UUID
	Patch *ledger.Patch

	// Set by Perform.
	Updated *transaction.Transaction
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	updated, err := ledger.Update(ctx, writer, t.ID, t.Patch)
	if err != nil {
		return err
	}

	t.Updated = updated
	return nil
}
