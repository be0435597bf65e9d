package service

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// DraftService handles draft read-side logic. Save, delete, and commit go
// through the operator.
type DraftService struct {
	storage *storage.Storage
	ttl     time.Duration
}

// NewDraftService creates a new DraftService with the configured TTL.
func NewDraftService(store *storage.Storage, ttl time.Duration) *DraftService {
	return &DraftService{storage: store, ttl: ttl}
}

// TTL returns the configured draft lifetime.
func (s *DraftService) TTL() time.Duration {
	return s.ttl
}

// GetDraft returns the user's draft. Expiry is checked lazily here: an
// expired draft is indistinguishable from one that never existed.
func (s *DraftService) GetDraft(ctx context.Context, userID string) (*Draft, error) {
	row, err := s.storage.Drafts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil || row.Expired(time.Now()) {
		return nil, ledger.NewNotFound("draft", userID)
	}
	converted := draftFromStorage(row)
	return &converted, nil
}
