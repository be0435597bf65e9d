package storage

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/draft"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Writer bundles every table's write access behind one database transaction.
// The table fields are interfaces so actions can run against test doubles.
type Writer struct {
	tx          bob.Tx
	Account     account.IAccountWriter
	Category    category.ICategoryTable
	Transaction transaction.ITransactionWriter
	Draft       draft.IDraftWriter
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Account:     account.NewWriter(tx),
		Category:    category.NewReader(tx),
		Transaction: transaction.NewWriter(tx),
		Draft:       draft.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}

// The methods below satisfy ledger.Store so the engine can run against a
// Writer without knowing about the storage layout.

func (w *Writer) AccountForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return w.Account.FindByIDForUpdate(ctx, id)
}

func (w *Writer) UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	return w.Account.UpdateBalance(ctx, id, balance)
}

func (w *Writer) CategoryByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return w.Category.FindByID(ctx, id)
}

func (w *Writer) TransactionByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	return w.Transaction.FindByID(ctx, id)
}

func (w *Writer) InsertTransaction(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	return w.Transaction.Insert(ctx, create)
}

func (w *Writer) UpdateTransaction(ctx context.Context, txn *transaction.Transaction) error {
	return w.Transaction.Update(ctx, txn)
}

func (w *Writer) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return w.Transaction.Delete(ctx, id)
}

func (w *Writer) PruneRelations(ctx context.Context, id uuid.UUID) error {
	return w.Transaction.PruneRelations(ctx, id)
}
