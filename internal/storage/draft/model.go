package draft

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

// MaxEntries bounds how many staged edits a single draft may hold.
const MaxEntries = 500

// Entry is one staged edit: the target transaction plus the fields to change.
// Nil fields are left untouched at commit time.
type Entry struct {
	TransactionID        uuid.UUID  `json:"transactionId"`
	Amount               *int64     `json:"amount,omitempty"`
	AccountID            *uuid.UUID `json:"accountId,omitempty"`
	DestinationAccountID *uuid.UUID `json:"destinationAccountId,omitempty"`
	CategoryID           *uuid.UUID `json:"categoryId,omitempty"`
	TransactionDate      *time.Time `json:"transactionDate,omitempty"`
	Note                 *string    `json:"note,omitempty"`
	Tags                 *[]string  `json:"tags,omitempty"`
}

// Draft is the staged bulk edit for one user. At most one draft exists per
// user; saving again overwrites.
type Draft struct {
	UserID    string
	Entries   []Entry
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the draft's TTL has elapsed at the given instant.
func (d *Draft) Expired(now time.Time) bool {
	return !d.ExpiresAt.After(now)
}

// IDraftTable defines the read-side interface for draft storage.
type IDraftTable interface {
	FindByUser(ctx context.Context, userID string) (*Draft, error)
}

// IDraftWriter defines the write-side interface for draft storage within a
// transaction.
type IDraftWriter interface {
	FindByUserForUpdate(ctx context.Context, userID string) (*Draft, error)
	Upsert(ctx context.Context, draft *Draft) error
	Delete(ctx context.Context, userID string) error
}

type draftRow struct {
	UserID    string    `db:"user_id"`
	Entries   []byte    `db:"entries"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func rowToDraft(row *draftRow) (*Draft, error) {
	result := &Draft{
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}
	if err := json.Unmarshal(row.Entries, &result.Entries); err != nil {
		return nil, err
	}
	return result, nil
}
