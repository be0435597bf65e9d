package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IAccountWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate retrieves an account and takes a row lock so concurrent
// balance mutations on the same account are serialized.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	return find(ctx, w.tx, id, true)
}

// Insert creates a new account and returns its generated ID. Balance starts
// at the starting balance.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("accounts",
			"name", "type", "sub_type", "balance", "starting_balance",
			"note", "icon", "color",
		),
		im.Values(psql.Arg(
			create.Name, int16(create.Type), create.SubType,
			create.StartingBalance, create.StartingBalance,
			create.Note, create.Icon, create.Color,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
}

// UpdateBalance sets the balance for a given account.
func (w *Writer) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
