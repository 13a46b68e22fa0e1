package repositories

import (
	"context"
	"trip-event-page/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ScheduleRepositoryMock struct {
	mock.Mock
}

func NewScheduleRepositoryMock() *ScheduleRepositoryMock {
	return &ScheduleRepositoryMock{}
}

func (m *ScheduleRepositoryMock) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]model.DaySchedule, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DaySchedule), args.Error(1)
}

func (m *ScheduleRepositoryMock) CollectIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *ScheduleRepositoryMock) DeleteItemsByScheduleIDs(ctx context.Context, scheduleIDs []uuid.UUID) error {
	args := m.Called(ctx, scheduleIDs)
	return args.Error(0)
}

func (m *ScheduleRepositoryMock) DeleteByEventID(ctx context.Context, eventID uuid.UUID) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

func (m *ScheduleRepositoryMock) InsertDay(ctx context.Context, eventID uuid.UUID, schedule model.DaySchedule) (uuid.UUID, error) {
	args := m.Called(ctx, eventID, schedule)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *ScheduleRepositoryMock) InsertItems(ctx context.Context, scheduleID uuid.UUID, items []model.ScheduleItem) error {
	args := m.Called(ctx, scheduleID, items)
	return args.Error(0)
}
