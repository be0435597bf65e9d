package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type CreateTransaction struct {
	Create *transaction.TransactionCreate

	// Set by Perform.
	Created *transaction.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := ledger.Create(ctx, writer, t.Create)
	if err != nil {
		return err
	}

	t.Created = created
	return nil
}
