package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/draft"
)

// SaveDraft stages a bulk edit for one user. It overwrites any existing
// draft, last write wins. The underlying transactions are untouched until
// commit.
type SaveDraft struct {
	UserID  string
	Entries []draft.Entry
	TTL     time.Duration

	// Set by Perform.
	Saved *draft.Draft
}

func (s *SaveDraft) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(s.Entries) > draft.MaxEntries {
		return ledger.NewValidation(fmt.Sprintf("draft exceeds %d entries", draft.MaxEntries))
	}

	now := time.Now()
	staged := &draft.Draft{
		UserID:    s.UserID,
		Entries:   s.Entries,
		CreatedAt: now,
		ExpiresAt: now.Add(s.TTL),
	}
	if err := writer.Draft.Upsert(ctx, staged); err != nil {
		return err
	}

	s.Saved = staged
	return nil
}
