package repositories

import (
	"context"
	"trip-event-page/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ContentRepositoryMock struct {
	mock.Mock
}

func NewContentRepositoryMock() *ContentRepositoryMock {
	return &ContentRepositoryMock{}
}

func (m *ContentRepositoryMock) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]model.ContentCard, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentCard), args.Error(1)
}

func (m *ContentRepositoryMock) DeleteByEventID(ctx context.Context, eventID uuid.UUID) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

func (m *ContentRepositoryMock) InsertMany(ctx context.Context, eventID uuid.UUID, cards []model.ContentCard) error {
	args := m.Called(ctx, eventID, cards)
	return args.Error(0)
}
