package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Draft       *DraftService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, draftTTL time.Duration) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Account:     NewAccountService(store),
		Draft:       NewDraftService(store, draftTTL),
	}
}
