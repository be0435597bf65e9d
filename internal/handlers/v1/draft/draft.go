package draft

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/draft"
)

// actionProcessor runs an action atomically through the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Entry is the wire model for one staged edit. Absent fields leave the
// target transaction's value untouched at commit time.
type Entry struct {
	ID                   string    `json:"id" required:"true" doc:"Target transaction UUID"`
	Amount               *int64    `json:"amount,omitempty" minimum:"1" doc:"Positive amount in minor units"`
	AccountID            *string   `json:"accountId,omitempty" doc:"Source account UUID"`
	DestinationAccountID *string   `json:"destinationAccountId,omitempty" doc:"Destination account UUID, transfers only"`
	CategoryID           *string   `json:"categoryId,omitempty" doc:"Category UUID"`
	TransactionDate      *string   `json:"transactionDate,omitempty" doc:"RFC3339 transaction date"`
	Note                 *string   `json:"note,omitempty" doc:"Free-form note"`
	Tags                 *[]string `json:"tags,omitempty" doc:"Tags, replaces the existing set"`
}

func parseEntry(wire *Entry) (draft.Entry, error) {
	transactionID, err := uuid.FromString(wire.ID)
	if err != nil {
		return draft.Entry{}, huma.NewError(http.StatusBadRequest, "invalid update id", err)
	}

	entry := draft.Entry{
		TransactionID: transactionID,
		Amount:        wire.Amount,
		Note:          wire.Note,
		Tags:          wire.Tags,
	}

	if wire.AccountID != nil {
		accountID, err := uuid.FromString(*wire.AccountID)
		if err != nil {
			return draft.Entry{}, huma.NewError(http.StatusBadRequest, "invalid update accountId", err)
		}
		entry.AccountID = &accountID
	}
	if wire.DestinationAccountID != nil {
		destinationID, err := uuid.FromString(*wire.DestinationAccountID)
		if err != nil {
			return draft.Entry{}, huma.NewError(http.StatusBadRequest, "invalid update destinationAccountId", err)
		}
		entry.DestinationAccountID = &destinationID
	}
	if wire.CategoryID != nil {
		categoryID, err := uuid.FromString(*wire.CategoryID)
		if err != nil {
			return draft.Entry{}, huma.NewError(http.StatusBadRequest, "invalid update categoryId", err)
		}
		entry.CategoryID = &categoryID
	}
	if wire.TransactionDate != nil {
		transactionDate, err := time.Parse(time.RFC3339, *wire.TransactionDate)
		if err != nil {
			return draft.Entry{}, huma.NewError(http.StatusBadRequest, "invalid update transactionDate", err)
		}
		entry.TransactionDate = &transactionDate
	}

	return entry, nil
}

func entryToWire(entry *draft.Entry) Entry {
	wire := Entry{
		ID:     entry.TransactionID.String(),
		Amount: entry.Amount,
		Note:   entry.Note,
		Tags:   entry.Tags,
	}
	if entry.AccountID != nil {
		accountID := entry.AccountID.String()
		wire.AccountID = &accountID
	}
	if entry.DestinationAccountID != nil {
		destinationID := entry.DestinationAccountID.String()
		wire.DestinationAccountID = &destinationID
	}
	if entry.CategoryID != nil {
		categoryID := entry.CategoryID.String()
		wire.CategoryID = &categoryID
	}
	if entry.TransactionDate != nil {
		transactionDate := entry.TransactionDate.Format(time.RFC3339)
		wire.TransactionDate = &transactionDate
	}
	return wire
}
