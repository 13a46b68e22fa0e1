package repositories

import (
	"context"
	"trip-event-page/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type EventRepositoryMock struct {
	mock.Mock
}

func NewEventRepositoryMock() *EventRepositoryMock {
	return &EventRepositoryMock{}
}

func (m *EventRepositoryMock) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) FindActive(ctx context.Context) (*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) List(ctx context.Context) ([]*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) Insert(ctx context.Context, title string, subtitle *string) (uuid.UUID, error) {
	args := m.Called(ctx, title, subtitle)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *EventRepositoryMock) Upsert(ctx context.Context, event *model.Event) (uuid.UUID, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *EventRepositoryMock) Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *EventRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventRepositoryMock) DeactivateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *EventRepositoryMock) Activate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
