package ledger

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// fakeStore is an in-memory Store. It has no transactionality of its own;
// validation-before-mutation is what the engine tests assert against it.
type fakeStore struct {
	accounts     map[uuid.UUID]*account.Account
	categories   map[uuid.UUID]*category.Category
	transactions map[uuid.UUID]*transaction.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:     make(map[uuid.UUID]*account.Account),
		categories:   make(map[uuid.UUID]*category.Category),
		transactions: make(map[uuid.UUID]*transaction.Transaction),
	}
}

func (f *fakeStore) addAccount(balance int64) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	f.accounts[id] = &account.Account{ID: id, Name: "acct", Balance: balance}
	return id
}

func (f *fakeStore) addCategory(categoryType category.CategoryType) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	f.categories[id] = &category.Category{ID: id, Name: "cat", Type: categoryType}
	return id
}

func (f *fakeStore) balance(id uuid.UUID) int64 {
	return f.accounts[id].Balance
}

// snapshot copies the store's state so a test can roll back the way a
// database transaction would.
func (f *fakeStore) snapshot() *fakeStore {
	copied := newFakeStore()
	for id, row := range f.accounts {
		c := *row
		copied.accounts[id] = &c
	}
	for id, row := range f.categories {
		c := *row
		copied.categories[id] = &c
	}
	for id, row := range f.transactions {
		c := *row
		copied.transactions[id] = &c
	}
	return copied
}

func (f *fakeStore) restore(snap *fakeStore) {
	f.accounts = snap.accounts
	f.categories = snap.categories
	f.transactions = snap.transactions
}

func (f *fakeStore) AccountForUpdate(_ context.Context, id uuid.UUID) (*account.Account, error) {
	row, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeStore) UpdateAccountBalance(_ context.Context, id uuid.UUID, balance int64) error {
	f.accounts[id].Balance = balance
	return nil
}

func (f *fakeStore) CategoryByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	row, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeStore) TransactionByID(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	row, ok := f.transactions[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeStore) InsertTransaction(_ context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	f.transactions[id] = &transaction.Transaction{
		ID:                   id,
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
	return id, nil
}

func (f *fakeStore) UpdateTransaction(_ context.Context, txn *transaction.Transaction) error {
	copied := *txn
	f.transactions[txn.ID] = &copied
	return nil
}

func (f *fakeStore) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	delete(f.transactions, id)
	return nil
}

func (f *fakeStore) PruneRelations(_ context.Context, id uuid.UUID) error {
	for _, row := range f.transactions {
		kept := row.RelatedIDs[:0]
		for _, relatedID := range row.RelatedIDs {
			if relatedID != id {
				kept = append(kept, relatedID)
			}
		}
		row.RelatedIDs = kept
	}
	return nil
}
