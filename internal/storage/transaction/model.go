package transaction

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

// TransactionType discriminates how a transaction affects balances.
type TransactionType int8

const (
	TypeExpense TransactionType = iota
	TypeIncome
	TypeTransfer
)

// Transaction represents a transaction record. Amount is in minor currency
// units and is always positive; the type determines the sign of the balance
// effect.
type Transaction struct {
	ID                   uuid.UUID
	Type                 TransactionType
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

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Type                 TransactionType
	Amount               int64
	AccountID            uuid.UUID
	DestinationAccountID *uuid.UUID
	CategoryID           *uuid.UUID
	TransactionDate      time.Time // defaults to now if zero
	Note                 string
	Tags                 []string
	RelatedIDs           []uuid.UUID
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	AccountID       *uuid.UUID
	CategoryID      *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// ITransactionTable defines the read-side interface for transaction storage.
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}

// ITransactionWriter defines the write-side interface for transaction
// storage within a transaction.
type ITransactionWriter interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	PruneRelations(ctx context.Context, id uuid.UUID) error
}

// transactionRow is the scan target; tags and related ids live in jsonb
// columns.
type transactionRow struct {
	ID                   uuid.UUID     `db:"id"`
	Type                 int16         `db:"type"`
	Amount               int64         `db:"amount"`
	AccountID            uuid.UUID     `db:"account_id"`
	DestinationAccountID uuid.NullUUID `db:"destination_account_id"`
	CategoryID           uuid.NullUUID `db:"category_id"`
	TransactionDate      time.Time     `db:"transaction_date"`
	Note                 string        `db:"note"`
	Tags                 []byte        `db:"tags"`
	RelatedIDs           []byte        `db:"related_ids"`
	CreatedAt            time.Time     `db:"created_at"`
}

func rowToTransaction(row *transactionRow) (*Transaction, error) {
	result := &Transaction{
		ID:              row.ID,
		Type:            TransactionType(row.Type),
		Amount:          row.Amount,
		AccountID:       row.AccountID,
		TransactionDate: row.TransactionDate,
		Note:            row.Note,
		CreatedAt:       row.CreatedAt,
	}
	if row.DestinationAccountID.Valid {
		destination := row.DestinationAccountID.UUID
		result.DestinationAccountID = &destination
	}
	if row.CategoryID.Valid {
		category := row.CategoryID.UUID
		result.CategoryID = &category
	}
	if len(row.Tags) != 0 {
		if err := json.Unmarshal(row.Tags, &result.Tags); err != nil {
			return nil, err
		}
	}
	if len(row.RelatedIDs) != 0 {
		if err := json.Unmarshal(row.RelatedIDs, &result.RelatedIDs); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func marshalRelatedIDs(ids []uuid.UUID) ([]byte, error) {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return json.Marshal(ids)
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
