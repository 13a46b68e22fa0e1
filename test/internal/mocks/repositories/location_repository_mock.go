package repositories

import (
	"context"
	"trip-event-page/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type LocationRepositoryMock struct {
	mock.Mock
}

func NewLocationRepositoryMock() *LocationRepositoryMock {
	return &LocationRepositoryMock{}
}

func (m *LocationRepositoryMock) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.LocationInfo, []model.FlatTransportRoute, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var routes []model.FlatTransportRoute
	if args.Get(1) != nil {
		routes = args.Get(1).([]model.FlatTransportRoute)
	}
	return args.Get(0).(*model.LocationInfo), routes, args.Error(2)
}

func (m *LocationRepositoryMock) CollectIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *LocationRepositoryMock) DeleteRoutesByLocationIDs(ctx context.Context, locationIDs []uuid.UUID) error {
	args := m.Called(ctx, locationIDs)
	return args.Error(0)
}

func (m *LocationRepositoryMock) DeleteByEventID(ctx context.Context, eventID uuid.UUID) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

func (m *LocationRepositoryMock) Insert(ctx context.Context, eventID uuid.UUID, location model.LocationInfo) (uuid.UUID, error) {
	args := m.Called(ctx, eventID, location)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *LocationRepositoryMock) InsertRoutes(ctx context.Context, locationID uuid.UUID, routes []model.FlatTransportRoute) error {
	args := m.Called(ctx, locationID, routes)
	return args.Error(0)
}
