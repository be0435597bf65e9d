package transaction

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	storagetxn "github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// actionProcessor runs an action atomically through the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

var typeNames = map[string]storagetxn.TransactionType{
	"expense":  storagetxn.TypeExpense,
	"income":   storagetxn.TypeIncome,
	"transfer": storagetxn.TypeTransfer,
}

func typeFromString(name string) (storagetxn.TransactionType, bool) {
	t, ok := typeNames[name]
	return t, ok
}

func typeToString(t storagetxn.TransactionType) string {
	switch t {
	case storagetxn.TypeExpense:
		return "expense"
	case storagetxn.TypeIncome:
		return "income"
	case storagetxn.TypeTransfer:
		return "transfer"
	}
	return "unknown"
}
