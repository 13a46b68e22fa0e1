package services

import (
	"context"
	"trip-event-page/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) GetEventByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) GetActiveEvent(ctx context.Context) (*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) GetAllEvents(ctx context.Context) ([]*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventServiceMock) SetActiveEvent(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventServiceMock) SaveFullEvent(ctx context.Context, event *model.Event) (uuid.UUID, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *EventServiceMock) CreateEvent(ctx context.Context, title string, subtitle *string) (uuid.UUID, error) {
	args := m.Called(ctx, title, subtitle)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *EventServiceMock) UpdateEvent(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *EventServiceMock) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
