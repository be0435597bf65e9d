package draft

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
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

// staticTTL is a stub for draftTTL.
type staticTTL time.Duration

func (s staticTTL) TTL() time.Duration {
	return time.Duration(s)
}

// mockDraftGetter is a mock for draftGetter.
type mockDraftGetter struct {
	mock.Mock
}

func (m *mockDraftGetter) GetDraft(ctx context.Context, userID string) (*service.Draft, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Draft), args.Error(1)
}
