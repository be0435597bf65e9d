package account

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Account is the API response model for an account. Balances are whole minor
// currency units (cents).
type Account struct {
	ID              string `json:"id" doc:"Account UUID"`
	Name            string `json:"name" doc:"Account name"`
	Type            int    `json:"type" doc:"Account type: 0=Cash, 1=Credit Cards, 2=Investments, 3=Loans, 4=Assets"`
	SubType         string `json:"subType" doc:"Account sub-type"`
	Balance         int64  `json:"balance" doc:"Current balance in minor units"`
	StartingBalance int64  `json:"startingBalance" doc:"Balance at account creation in minor units"`
	Note            string `json:"note,omitempty" doc:"Free-form note"`
	Archived        bool   `json:"archived" doc:"Whether the account is archived"`
	Icon            string `json:"icon,omitempty" doc:"Icon identifier"`
	Color           string `json:"color,omitempty" doc:"Display color"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(row *service.Account) Account {
	return Account{
		ID:              row.ID.String(),
		Name:            row.Name,
		Type:            int(row.Type),
		SubType:         row.SubType,
		Balance:         row.Balance,
		StartingBalance: row.StartingBalance,
		Note:            row.Note,
		Archived:        row.Archived,
		Icon:            row.Icon,
		Color:           row.Color,
		CreatedAt:       row.CreatedAt.Format(time.RFC3339),
	}
}
