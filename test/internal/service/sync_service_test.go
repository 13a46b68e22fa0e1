package service

import (
	"context"
	"errors"
	"testing"

	"trip-event-page/config"
	"trip-event-page/internal/model"
	"trip-event-page/internal/service"
	"trip-event-page/internal/store"
	apperrors "trip-event-page/pkg/app_errors"
	serviceMocks "trip-event-page/test/internal/mocks/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLocalStore redis 없는 메모리 스토어. 원격이 죽었을 때의 폴백 대상.
func newLocalStore() *store.EventStore {
	return store.NewEventStore(nil, config.AdminConfig{Username: "admin", Password: "admin12"})
}

func TestSyncService_ActiveEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("RemoteFirst", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		remoteEvent := &model.Event{ID: uuid.New(), Title: "원격 이벤트", IsActive: true}
		remote.On("GetActiveEvent", ctx).Return(remoteEvent, nil)

		event, err := sync.ActiveEvent(ctx)

		require.NoError(t, err)
		assert.Equal(t, "원격 이벤트", event.Title)
		// 원격이 살아 있으면 로컬은 건드리지 않는다
		assert.Equal(t, 0, local.Len())
	})

	t.Run("SeedsDemoWhenRemoteDownAndLocalEmpty", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		remote.On("GetActiveEvent", ctx).Return(nil, errors.New("connection refused"))

		event, err := sync.ActiveEvent(ctx)

		require.NoError(t, err)
		assert.Equal(t, "강릉 2박 3일 여행", event.Title)
		assert.Equal(t, 1, local.Len())
	})

	t.Run("SeedIsIdempotentAcrossCalls", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		remote.On("GetActiveEvent", ctx).Return(nil, errors.New("connection refused"))

		first, err := sync.ActiveEvent(ctx)
		require.NoError(t, err)
		second, err := sync.ActiveEvent(ctx)
		require.NoError(t, err)

		// 한 번 심은 뒤에는 같은 이벤트가 그대로 반환된다
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, local.Len())
	})

	t.Run("UsesLocalEventWhenPresent", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		localID := local.CreateEvent(ctx, model.Event{Title: "로컬 이벤트"})
		remote.On("GetActiveEvent", ctx).Return(nil, apperrors.ErrNoActiveEvent)

		event, err := sync.ActiveEvent(ctx)

		require.NoError(t, err)
		// 데모를 새로 심지 않고 있는 로컬 이벤트를 쓴다
		assert.Equal(t, localID, event.ID)
		assert.Equal(t, 1, local.Len())
	})

	t.Run("NoActiveAnywhere", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		// 로컬에 이벤트는 있지만 활성 포인터가 비어 있는 경우
		local.CreateEvent(ctx, model.Event{Title: "이벤트"})
		deleted := local.GetActiveEvent()
		require.NotNil(t, deleted)
		local.DeleteEvent(ctx, deleted.ID)
		local.PutEvent(ctx, model.Event{ID: uuid.New(), Title: "포인터 없는 이벤트"})

		remote.On("GetActiveEvent", ctx).Return(nil, apperrors.ErrNoActiveEvent)

		_, err := sync.ActiveEvent(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNoActiveEvent)
	})
}

func TestSyncService_SaveEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("RemoteSuccessMirrorsLocally", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		remoteID := uuid.New()
		event := &model.Event{Title: "저장할 이벤트"}
		remote.On("SaveFullEvent", ctx, event).Return(remoteID, nil)

		id, tier, err := sync.SaveEvent(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, remoteID, id)
		assert.Equal(t, service.TierRemote, tier)

		// 원격이 부여한 id로 로컬에도 미러링된다
		locals := local.Events()
		require.Len(t, locals, 1)
		assert.Equal(t, remoteID, locals[0].ID)
	})

	t.Run("RemoteFailureFallsBackToLocalCreate", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		event := &model.Event{Title: "로컬에 저장될 이벤트"}
		remote.On("SaveFullEvent", ctx, event).Return(uuid.Nil, errors.New("connection refused"))

		id, tier, err := sync.SaveEvent(ctx, event)

		// 로컬 저장은 실패로 치지 않는다
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, service.TierLocal, tier)
		assert.Equal(t, 1, local.Len())
	})

	t.Run("RemoteFailureWithExistingIDUpdatesLocally", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		existingID := uuid.New()
		local.PutEvent(ctx, model.Event{ID: existingID, Title: "Before"})

		event := &model.Event{ID: existingID, Title: "After"}
		remote.On("SaveFullEvent", ctx, event).Return(uuid.Nil, errors.New("connection refused"))

		id, tier, err := sync.SaveEvent(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, existingID, id)
		assert.Equal(t, service.TierLocal, tier)
		require.Equal(t, 1, local.Len())
		assert.Equal(t, "After", local.Events()[0].Title)
	})
}

func TestSyncService_ListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("RemoteWhenNonEmpty", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		remote.On("GetAllEvents", ctx).Return([]*model.Event{
			{ID: uuid.New(), Title: "원격 이벤트"},
		}, nil)

		events, err := sync.ListEvents(ctx)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "원격 이벤트", events[0].Title)
	})

	t.Run("LocalWhenRemoteEmpty", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		local.CreateEvent(ctx, model.Event{Title: "로컬 이벤트"})
		remote.On("GetAllEvents", ctx).Return([]*model.Event{}, nil)

		events, err := sync.ListEvents(ctx)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "로컬 이벤트", events[0].Title)
	})

	t.Run("LocalWhenRemoteDown", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		local.CreateEvent(ctx, model.Event{Title: "로컬 이벤트"})
		remote.On("GetAllEvents", ctx).Return(nil, errors.New("connection refused"))

		events, err := sync.ListEvents(ctx)

		require.NoError(t, err)
		require.Len(t, events, 1)
	})

	t.Run("EmptyEverywhere", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		remote.On("GetAllEvents", ctx).Return([]*model.Event{}, nil)

		events, err := sync.ListEvents(ctx)

		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestSyncService_ActivateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("UpdatesLocalPointerAfterRemote", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		id := uuid.New()
		local.PutEvent(ctx, model.Event{ID: id, Title: "이벤트"})
		remote.On("SetActiveEvent", ctx, id).Return(nil)

		err := sync.ActivateEvent(ctx, id)

		require.NoError(t, err)
		active := local.GetActiveEvent()
		require.NotNil(t, active)
		assert.Equal(t, id, active.ID)
	})

	t.Run("RemoteFailureLeavesLocalUntouched", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		id := uuid.New()
		remote.On("SetActiveEvent", ctx, id).Return(apperrors.ErrEventNotFound)

		err := sync.ActivateEvent(ctx, id)

		require.Error(t, err)
		assert.Nil(t, local.GetActiveEvent())
	})
}

func TestSyncService_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("DeletesFromBothTiers", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		id := local.CreateEvent(ctx, model.Event{Title: "지울 이벤트"})
		remote.On("DeleteEvent", ctx, id).Return(nil)

		err := sync.DeleteEvent(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, 0, local.Len())
	})

	t.Run("RemoteFailureKeepsLocal", func(t *testing.T) {
		remote := serviceMocks.NewEventServiceMock()
		local := newLocalStore()
		sync := service.NewSyncService(remote, local)

		id := local.CreateEvent(ctx, model.Event{Title: "이벤트"})
		remote.On("DeleteEvent", ctx, id).Return(errors.New("connection refused"))

		err := sync.DeleteEvent(ctx, id)

		require.Error(t, err)
		assert.Equal(t, 1, local.Len())
	})
}
