// Package ledger keeps account balances equal to the net effect of all live
// transactions. Every operation assumes it runs inside a single database
// transaction supplied by the caller via Store; validation always happens
// before any balance mutation.
package ledger

import (
	"bytes"
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Store is the transactional scope the engine mutates through. Account reads
// must take row locks so concurrent edits touching the same account are
// serialized.
type Store interface {
	AccountForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error)
	UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance int64) error
	CategoryByID(ctx context.Context, id uuid.UUID) (*category.Category, error)
	TransactionByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	InsertTransaction(ctx context.Context, create *transaction.TransactionCreate) (uuid.UUID, error)
	UpdateTransaction(ctx context.Context, txn *transaction.Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	PruneRelations(ctx context.Context, id uuid.UUID) error
}

// Patch is a partial update to a transaction. Nil fields keep their current
// value. Type is immutable after creation and has no patch field.
type Patch struct {
	Amount               *int64
	AccountID            *uuid.UUID
	DestinationAccountID *uuid.UUID
	CategoryID           *uuid.UUID
	TransactionDate      *time.Time
	Note                 *string
	Tags                 *[]string
}

// Create validates the input and applies its positive balance effect.
// Returns the persisted transaction.
func Create(ctx context.Context, store Store, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	candidate := &transaction.Transaction{
		Type:                 create.Type,
		Amount:               create.Amount,
		AccountID:            create.AccountID,
		DestinationAccountID: create.DestinationAccountID,
		CategoryID:           create.CategoryID,
		TransactionDate:      create.TransactionDate,
		Note:                 create.Note,
		Tags:                 create.Tags,
		RelatedIDs:           create.RelatedIDs,
	}
	if err := validate(ctx, store, candidate); err != nil {
		return nil, err
	}

	id, err := store.InsertTransaction(ctx, create)
	if err != nil {
		return nil, err
	}

	if err := applyEffect(ctx, store, candidate, 1); err != nil {
		return nil, err
	}

	return store.TransactionByID(ctx, id)
}

// Update reverses the old effect and applies the new one. Amount, accounts,
// category, date, note, and tags may all change in one call; reversal plus
// re-application handles every combination uniformly. The caller's single
// database transaction makes the pair atomic, so a validation failure leaves
// no durable mutation.
func Update(ctx context.Context, store Store, id uuid.UUID, patch *Patch) (*transaction.Transaction, error) {
	existing, err := store.TransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NewNotFound("transaction", id.String())
	}

	candidate := merge(existing, patch)
	if err := validate(ctx, store, candidate); err != nil {
		return nil, err
	}

	if err := applyEffect(ctx, store, existing, -1); err != nil {
		return nil, err
	}
	if err := applyEffect(ctx, store, candidate, 1); err != nil {
		return nil, err
	}

	if err := store.UpdateTransaction(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// Delete reverses the transaction's effect, prunes references to it from
// other transactions, and removes the record. Deleting one leg of a transfer
// removes both balance effects.
func Delete(ctx context.Context, store Store, id uuid.UUID) error {
	existing, err := store.TransactionByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return NewNotFound("transaction", id.String())
	}

	if err := applyEffect(ctx, store, existing, -1); err != nil {
		return err
	}
	if err := store.PruneRelations(ctx, id); err != nil {
		return err
	}
	return store.DeleteTransaction(ctx, id)
}

func merge(existing *transaction.Transaction, patch *Patch) *transaction.Transaction {
	candidate := *existing
	if patch.Amount != nil {
		candidate.Amount = *patch.Amount
	}
	if patch.AccountID != nil {
		candidate.AccountID = *patch.AccountID
	}
	if patch.DestinationAccountID != nil {
		destination := *patch.DestinationAccountID
		candidate.DestinationAccountID = &destination
	}
	if patch.CategoryID != nil {
		categoryID := *patch.CategoryID
		candidate.CategoryID = &categoryID
	}
	if patch.TransactionDate != nil {
		candidate.TransactionDate = *patch.TransactionDate
	}
	if patch.Note != nil {
		candidate.Note = *patch.Note
	}
	if patch.Tags != nil {
		candidate.Tags = *patch.Tags
	}
	return &candidate
}

// validate checks the whole field combination before any balance mutation.
func validate(ctx context.Context, store Store, txn *transaction.Transaction) error {
	if txn.Amount <= 0 {
		return NewValidation("amount must be positive")
	}

	source, err := store.AccountForUpdate(ctx, txn.AccountID)
	if err != nil {
		return err
	}
	if source == nil {
		return NewNotFound("account", txn.AccountID.String())
	}

	switch txn.Type {
	case transaction.TypeExpense, transaction.TypeIncome:
		if txn.DestinationAccountID != nil {
			return NewValidation("destination account only valid for transfers")
		}
		if txn.CategoryID == nil {
			return NewValidation("category required for expense and income transactions")
		}
		matched, err := categoryMatches(ctx, store, *txn.CategoryID, txn.Type)
		if err != nil {
			return err
		}
		if !matched {
			return NewValidation("category type does not match transaction type")
		}

	case transaction.TypeTransfer:
		if txn.DestinationAccountID == nil {
			return NewValidation("destination account required for transfers")
		}
		if *txn.DestinationAccountID == txn.AccountID {
			return NewValidation("destination account must differ from source account")
		}
		destination, err := store.AccountForUpdate(ctx, *txn.DestinationAccountID)
		if err != nil {
			return err
		}
		if destination == nil {
			return NewNotFound("account", txn.DestinationAccountID.String())
		}
		// The category is informational on transfers: existence is still
		// checked, its type never gates.
		if txn.CategoryID != nil {
			row, err := store.CategoryByID(ctx, *txn.CategoryID)
			if err != nil {
				return err
			}
			if row == nil {
				return NewNotFound("category", txn.CategoryID.String())
			}
		}

	default:
		return NewValidation("unknown transaction type")
	}

	return nil
}

func categoryMatches(ctx context.Context, store Store, categoryID uuid.UUID, txnType transaction.TransactionType) (bool, error) {
	row, err := store.CategoryByID(ctx, categoryID)
	if err != nil {
		return false, err
	}
	if row == nil {
		return false, NewNotFound("category", categoryID.String())
	}
	switch txnType {
	case transaction.TypeExpense:
		return row.Type == category.CategoryTypeExpense, nil
	case transaction.TypeIncome:
		return row.Type == category.CategoryTypeIncome, nil
	}
	return false, nil
}

// applyEffect applies a transaction's financial effect with the given sign.
// sign=1 applies, sign=-1 reverses. A transfer moves both legs as one unit.
// Accounts are locked in a stable order so concurrent opposing transfers
// cannot deadlock.
func applyEffect(ctx context.Context, store Store, txn *transaction.Transaction, sign int64) error {
	switch txn.Type {
	case transaction.TypeExpense:
		return adjustBalance(ctx, store, txn.AccountID, -sign*txn.Amount)
	case transaction.TypeIncome:
		return adjustBalance(ctx, store, txn.AccountID, sign*txn.Amount)
	case transaction.TypeTransfer:
		first, second := txn.AccountID, *txn.DestinationAccountID
		if bytes.Compare(second.Bytes(), first.Bytes()) < 0 {
			first, second = second, first
		}
		if _, err := store.AccountForUpdate(ctx, first); err != nil {
			return err
		}
		if _, err := store.AccountForUpdate(ctx, second); err != nil {
			return err
		}
		if err := adjustBalance(ctx, store, txn.AccountID, -sign*txn.Amount); err != nil {
			return err
		}
		return adjustBalance(ctx, store, *txn.DestinationAccountID, sign*txn.Amount)
	}
	return NewValidation("unknown transaction type")
}

func adjustBalance(ctx context.Context, store Store, accountID uuid.UUID, delta int64) error {
	row, err := store.AccountForUpdate(ctx, accountID)
	if err != nil {
		return err
	}
	if row == nil {
		return NewNotFound("account", accountID.String())
	}
	return store.UpdateAccountBalance(ctx, accountID, row.Balance+delta)
}
