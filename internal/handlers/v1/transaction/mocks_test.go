package transaction

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// mockOperator is a mock for actionProcessor. Result fields on actions are
// populated through Run hooks on the expectation.
type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}
