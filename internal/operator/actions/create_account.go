package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

type CreateAccount struct {
	Name            string
	Type            account.AccountType
	SubType         string
	StartingBalance int64
	Note            string
	Icon            string
	Color           string

	// Set by Perform.
	CreatedID uuid.UUID
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Account.Insert(ctx, &account.AccountCreate{
		Name:            c.Name,
		Type:            c.Type,
		SubType:         c.SubType,
		StartingBalance: c.StartingBalance,
		Note:            c.Note,
		Icon:            c.Icon,
		Color:           c.Color,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
