package services

import (
	"context"
	"trip-event-page/internal/model"
	"trip-event-page/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type SyncServiceMock struct {
	mock.Mock
}

func NewSyncServiceMock() *SyncServiceMock {
	return &SyncServiceMock{}
}

func (m *SyncServiceMock) ActiveEvent(ctx context.Context) (*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *SyncServiceMock) SaveEvent(ctx context.Context, event *model.Event) (uuid.UUID, service.StorageTier, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(uuid.UUID), args.Get(1).(service.StorageTier), args.Error(2)
}

func (m *SyncServiceMock) ListEvents(ctx context.Context) ([]*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *SyncServiceMock) ActivateEvent(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *SyncServiceMock) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
