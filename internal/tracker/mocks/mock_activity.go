package mocks

import (
	"context"

	"taskhub/internal/tracker/model"

	"github.com/stretchr/testify/mock"
)

// MockActivityRepository mocks repository.ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) CreateActivity(ctx context.Context, entry *model.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) FindActivity(ctx context.Context, filter model.ActivityFilter) ([]*model.ActivityLog, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.ActivityLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityRepository) EnsureActivityIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Descriptions returns the descriptions of every recorded entry, in call order.
func (m *MockActivityRepository) Descriptions() []string {
	var out []string
	for _, call := range m.Calls {
		if call.Method != "CreateActivity" {
			continue
		}
		if entry, ok := call.Arguments.Get(1).(*model.ActivityLog); ok {
			out = append(out, entry.ActionDescription)
		}
	}
	return out
}
