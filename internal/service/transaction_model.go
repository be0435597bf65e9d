package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID                   uuid.UUID
	Type                 transaction.TransactionType
	Amount               int64
	AccountID            uuid.UUID
	DestinationAccountID *uuid.UUID
	CategoryID           *uuid.UUID
	TransactionDate      time.Time
	Note                 string
	Tags                 []string
	RelatedIDs           []uuid.UUID
	CreatedAt            time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func TransactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:                   row.ID,
		Type:                 row.Type,
		Amount:               row.Amount,
		AccountID:            row.AccountID,
		DestinationAccountID: row.DestinationAccountID,
		CategoryID:           row.CategoryID,
		TransactionDate:      row.TransactionDate,
		Note:                 row.Note,
		Tags:                 row.Tags,
		RelatedIDs:           row.RelatedIDs,
		CreatedAt:            row.CreatedAt,
	}
}
