package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// CategoryType determines which transaction types a category is compatible
// with.
type CategoryType int8

const (
	CategoryTypeExpense CategoryType = iota
	CategoryTypeIncome
)

// Category represents a category record. The ledger consults categories for
// validation only; taxonomy management happens elsewhere.
type Category struct {
	ID        uuid.UUID     `db:"id"`
	Name      string        `db:"name"`
	Type      CategoryType  `db:"type"`
	ParentID  uuid.NullUUID `db:"parent_id"`
	Archived  bool          `db:"archived"`
	CreatedAt time.Time     `db:"created_at"`
}

// ICategoryTable defines the read-side interface for category storage.
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
}
