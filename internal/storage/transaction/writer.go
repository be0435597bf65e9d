package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ ITransactionWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a new transaction and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	tags, err := marshalTags(create.Tags)
	if err != nil {
		return uuid.Nil, err
	}
	relatedIDs, err := marshalRelatedIDs(create.RelatedIDs)
	if err != nil {
		return uuid.Nil, err
	}

	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	query := psql.Insert(
		im.Into("transactions",
			"type", "amount", "account_id", "destination_account_id",
			"category_id", "transaction_date", "note", "tags", "related_ids",
		),
		im.Values(psql.Arg(
			int16(create.Type), create.Amount, create.AccountID,
			nullableUUID(create.DestinationAccountID),
			nullableUUID(create.CategoryID),
			transactionDate, create.Note, tags, relatedIDs,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
}

// Update persists every mutable field of the given transaction.
func (w *Writer) Update(ctx context.Context, transaction *Transaction) error {
	tags, err := marshalTags(transaction.Tags)
	if err != nil {
		return err
	}
	relatedIDs, err := marshalRelatedIDs(transaction.RelatedIDs)
	if err != nil {
		return err
	}

	query := psql.Update(
		um.Table("transactions"),
		um.SetCol("amount").ToArg(transaction.Amount),
		um.SetCol("account_id").ToArg(transaction.AccountID),
		um.SetCol("destination_account_id").ToArg(nullableUUID(transaction.DestinationAccountID)),
		um.SetCol("category_id").ToArg(nullableUUID(transaction.CategoryID)),
		um.SetCol("transaction_date").ToArg(transaction.TransactionDate),
		um.SetCol("note").ToArg(transaction.Note),
		um.SetCol("tags").ToArg(tags),
		um.SetCol("related_ids").ToArg(relatedIDs),
		um.Where(psql.Quote("id").EQ(psql.Arg(transaction.ID))),
	)
	_, err = bob.Exec(ctx, w.tx, query)
	return err
}

// Delete removes a transaction row.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

// PruneRelations removes the given transaction id from every other
// transaction's related_ids so deletes never leave dangling references.
func (w *Writer) PruneRelations(ctx context.Context, id uuid.UUID) error {
	query := psql.Update(
		um.Table("transactions"),
		um.SetCol("related_ids").To(psql.Raw("related_ids - ?", id.String())),
		um.Where(psql.Raw("jsonb_exists(related_ids, ?)", id.String())),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
