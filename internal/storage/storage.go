package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/draft"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Storage exposes read access to every table plus Write for transactional
// mutations. The table fields are interfaces so tests can inject mocks.
type Storage struct {
	DB           bob.DB
	Accounts     account.IAccountTable
	Categories   category.ICategoryTable
	Transactions transaction.ITransactionTable
	Drafts       draft.IDraftTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           bobDB,
		Accounts:     account.NewReader(bobDB),
		Categories:   category.NewReader(bobDB),
		Transactions: transaction.NewReader(bobDB),
		Drafts:       draft.NewReader(bobDB),
	}
}

// Write begins a database transaction and returns a Writer scoped to it.
// The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
