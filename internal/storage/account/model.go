package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// AccountType groups accounts for presentation purposes. The ledger never
// branches on it.
type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeCreditCards
	AccountTypeInvestments
	AccountTypeLoans
	AccountTypeAssets
)

// Account represents an account record. Balance and StartingBalance are in
// minor currency units (cents).
type Account struct {
	ID              uuid.UUID   `db:"id"`
	Name            string      `db:"name"`
	Type            AccountType `db:"type"`
	SubType         string      `db:"sub_type"`
	Balance         int64       `db:"balance"`
	StartingBalance int64       `db:"starting_balance"`
	Note            string      `db:"note"`
	Archived        bool        `db:"archived"`
	Icon            string      `db:"icon"`
	Color           string      `db:"color"`
	CreatedAt       time.Time   `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Name            string
	Type            AccountType
	SubType         string
	StartingBalance int64
	Note            string
	Icon            string
	Color           string
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Limit  int
	Offset int
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountListResult contains a page of accounts and an optional next cursor.
type AccountListResult struct {
	Accounts   []*Account
	NextCursor *AccountCursor
}

// IAccountTable defines the read-side interface for account storage.
// This abstraction allows swapping the implementation without changing callers.
type IAccountTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error)
}

// IAccountWriter defines the write-side interface for account storage within
// a transaction.
type IAccountWriter interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error
}
