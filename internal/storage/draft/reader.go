package draft

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

var _ IDraftTable = (*Reader)(nil)

// FindByUser retrieves a user's draft. Returns nil when no draft exists.
// Expiry is the caller's concern; the row is returned as stored.
func (r *Reader) FindByUser(ctx context.Context, userID string) (*Draft, error) {
	return find(ctx, r.exec, userID, false)
}

func find(ctx context.Context, exec bob.Executor, userID string, forUpdate bool) (*Draft, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("user_id", "entries", "created_at", "expires_at"),
		sm.From("drafts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, exec, psql.Select(queryMods...), scan.StructMapper[draftRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToDraft(&row)
}
