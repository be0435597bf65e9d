package service

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/storage/draft"
)

// Draft represents a staged bulk edit in the service layer.
type Draft struct {
	UserID    string
	Entries   []draft.Entry
	CreatedAt time.Time
	ExpiresAt time.Time
}

func draftFromStorage(row *draft.Draft) Draft {
	return Draft{
		UserID:    row.UserID,
		Entries:   row.Entries,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}
}
