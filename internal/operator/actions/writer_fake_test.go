package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/draft"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// fakeState is shared in-memory table state behind a storage.Writer so
// actions run without a database. Method sets live on per-table types
// because the writer interfaces overlap on names like Insert and Delete.
type fakeState struct {
	accounts     map[uuid.UUID]*account.Account
	categories   map[uuid.UUID]*category.Category
	transactions map[uuid.UUID]*transaction.Transaction
	drafts       map[string]*draft.Draft
}

func newFakeWriter() (*storage.Writer, *fakeState) {
	state := &fakeState{
		accounts:     make(map[uuid.UUID]*account.Account),
		categories:   make(map[uuid.UUID]*category.Category),
		transactions: make(map[uuid.UUID]*transaction.Transaction),
		drafts:       make(map[string]*draft.Draft),
	}
	return &storage.Writer{
		Account:     &fakeAccountTable{state},
		Category:    &fakeCategoryTable{state},
		Transaction: &fakeTransactionTable{state},
		Draft:       &fakeDraftTable{state},
	}, state
}

func (s *fakeState) addAccount(balance int64) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	s.accounts[id] = &account.Account{ID: id, Name: "acct", Balance: balance}
	return id
}

func (s *fakeState) addCategory(categoryType category.CategoryType) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	s.categories[id] = &category.Category{ID: id, Name: "cat", Type: categoryType}
	return id
}

func (s *fakeState) addTransaction(txn *transaction.Transaction) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	txn.ID = id
	s.transactions[id] = txn
	return id
}

type fakeAccountTable struct {
	s *fakeState
}

func (f *fakeAccountTable) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*account.Account, error) {
	row, ok := f.s.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeAccountTable) Insert(_ context.Context, create *account.AccountCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	f.s.accounts[id] = &account.Account{
		ID:              id,
		Name:            create.Name,
		Type:            create.Type,
		SubType:         create.SubType,
		Balance:         create.StartingBalance,
		StartingBalance: create.StartingBalance,
		Note:            create.Note,
		Icon:            create.Icon,
		Color:           create.Color,
	}
	return id, nil
}

func (f *fakeAccountTable) UpdateBalance(_ context.Context, id uuid.UUID, balance int64) error {
	f.s.accounts[id].Balance = balance
	return nil
}

type fakeCategoryTable struct {
	s *fakeState
}

func (f *fakeCategoryTable) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	row, ok := f.s.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

type fakeTransactionTable struct {
	s *fakeState
}

func (f *fakeTransactionTable) FindByID(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	row, ok := f.s.transactions[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeTransactionTable) Insert(_ context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	f.s.transactions[id] = &transaction.Transaction{
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

func (f *fakeTransactionTable) Update(_ context.Context, txn *transaction.Transaction) error {
	copied := *txn
	f.s.transactions[txn.ID] = &copied
	return nil
}

func (f *fakeTransactionTable) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.s.transactions, id)
	return nil
}

func (f *fakeTransactionTable) PruneRelations(_ context.Context, id uuid.UUID) error {
	for _, row := range f.s.transactions {
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

type fakeDraftTable struct {
	s *fakeState
}

func (f *fakeDraftTable) FindByUserForUpdate(_ context.Context, userID string) (*draft.Draft, error) {
	row, ok := f.s.drafts[userID]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeDraftTable) Upsert(_ context.Context, staged *draft.Draft) error {
	copied := *staged
	f.s.drafts[staged.UserID] = &copied
	return nil
}

func (f *fakeDraftTable) Delete(_ context.Context, userID string) error {
	delete(f.s.drafts, userID)
	return nil
}
