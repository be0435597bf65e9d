package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// Account represents an account in the service layer. Balances are minor
// currency units.
type Account struct {
	ID              uuid.UUID
	Name            string
	Type            account.AccountType
	SubType         string
	Balance         int64
	StartingBalance int64
	Note            string
	Archived        bool
	Icon            string
	Color           string
	CreatedAt       time.Time
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:              row.ID,
		Name:            row.Name,
		Type:            row.Type,
		SubType:         row.SubType,
		Balance:         row.Balance,
		StartingBalance: row.StartingBalance,
		Note:            row.Note,
		Archived:        row.Archived,
		Icon:            row.Icon,
		Color:           row.Color,
		CreatedAt:       row.CreatedAt,
	}
}
