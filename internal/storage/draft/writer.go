package draft

import (
	"context"
	"encoding/json"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IDraftWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByUserForUpdate retrieves a user's draft with a row lock so a commit in
// flight is never racing a concurrent save.
func (w *Writer) FindByUserForUpdate(ctx context.Context, userID string) (*Draft, error) {
	return find(ctx, w.tx, userID, true)
}

// Upsert replaces the user's draft unconditionally, last write wins. The
// conflict clause makes concurrent saves for one user serialize on the row
// lock instead of racing a delete-then-insert into a duplicate key error.
func (w *Writer) Upsert(ctx context.Context, draft *Draft) error {
	entries, err := json.Marshal(draft.Entries)
	if err != nil {
		return err
	}

	query := psql.Insert(
		im.Into("drafts", "user_id", "entries", "created_at", "expires_at"),
		im.Values(psql.Arg(draft.UserID, entries, draft.CreatedAt, draft.ExpiresAt)),
		im.OnConflict("user_id").DoUpdate(
			im.SetExcluded("entries", "created_at", "expires_at"),
		),
	)
	_, err = bob.Exec(ctx, w.tx, query)
	return err
}

// Delete removes the user's draft. Deleting an absent draft is a no-op.
func (w *Writer) Delete(ctx context.Context, userID string) error {
	query := psql.Delete(
		dm.From("drafts"),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
