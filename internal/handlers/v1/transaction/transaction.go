package transaction

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                   string   `json:"id" doc:"Transaction UUID"`
	Type                 string   `json:"type" enum:"expense,income,transfer" doc:"Transaction type"`
	Amount               int64    `json:"amount" doc:"Positive amount in minor units"`
	AccountID            string   `json:"accountId" doc:"Source account UUID"`
	DestinationAccountID string   `json:"destinationAccountId,omitempty" doc:"Destination account UUID, transfers only"`
	CategoryID           string   `json:"categoryId,omitempty" doc:"Category UUID"`
	TransactionDate      string   `json:"transactionDate" doc:"RFC3339 transaction date"`
	Note                 string   `json:"note,omitempty" doc:"Free-form note"`
	Tags                 []string `json:"tags,omitempty" doc:"Tags"`
	RelatedIDs           []string `json:"relatedIds,omitempty" doc:"Related transaction UUIDs"`
	CreatedAt            string   `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(row *service.Transaction) Transaction {
	converted := Transaction{
		ID:              row.ID.String(),
		Type:            typeToString(row.Type),
		Amount:          row.Amount,
		AccountID:       row.AccountID.String(),
		TransactionDate: row.TransactionDate.Format(time.RFC3339),
		Note:            row.Note,
		Tags:            row.Tags,
		CreatedAt:       row.CreatedAt.Format(time.RFC3339),
	}
	if row.DestinationAccountID != nil {
		converted.DestinationAccountID = row.DestinationAccountID.String()
	}
	if row.CategoryID != nil {
		converted.CategoryID = row.CategoryID.String()
	}
	for _, relatedID := range row.RelatedIDs {
		converted.RelatedIDs = append(converted.RelatedIDs, relatedID.String())
	}
	return converted
}
