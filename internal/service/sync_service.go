package service

import (
	"context"

	"trip-event-page/internal/model"
	"trip-event-page/internal/store"
	apperrors "trip-event-page/pkg/app_errors"
	"trip-event-page/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageTier 쓰기가 실제로 어디에 저장됐는지. 사용자 메시지는 구분하지 않고
// 로그와 테스트에서만 쓴다.
type StorageTier string

const (
	TierRemote StorageTier = "remote"
	TierLocal  StorageTier = "local"
)

// SyncService 원격 스토어와 로컬 스토어 중 하나를 고르는 폴백 정책.
// 읽기는 원격 우선, 비어 있으면 로컬(필요하면 데모 시드). 쓰기는 원격 시도 후
// 실패하면 로컬에만 저장하고 성공으로 처리한다.
type SyncService interface {
	// ActiveEvent 공개 화면용 읽기 경로.
	ActiveEvent(ctx context.Context) (*model.Event, error)
	// SaveEvent 관리자 저장 경로. 저장된 id와 실제 저장 계층을 돌려준다.
	SaveEvent(ctx context.Context, event *model.Event) (uuid.UUID, StorageTier, error)
	// ListEvents 대시보드 목록. 원격 요약이 비어 있지 않으면 그걸, 아니면 로컬 전체.
	ListEvents(ctx context.Context) ([]*model.Event, error)
	ActivateEvent(ctx context.Context, id uuid.UUID) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type SyncServiceImpl struct {
	remote EventService
	local  *store.EventStore
	log    *zap.Logger
}

func NewSyncService(remote EventService, local *store.EventStore) SyncService {
	return &SyncServiceImpl{
		remote: remote,
		local:  local,
		log:    logger.WithComponent("sync"),
	}
}

func (s *SyncServiceImpl) ActiveEvent(ctx context.Context) (*model.Event, error) {
	event, err := s.remote.GetActiveEvent(ctx)
	if err == nil {
		return event, nil
	}
	if err != apperrors.ErrNoActiveEvent {
		s.log.Warn("remote active event unavailable, falling back to local", zap.Error(err))
	}

	// 로컬 컬렉션이 비어 있으면 먼저 데모 이벤트를 심는다. 한 번 채워지면
	// 다음 호출부터는 같은 이벤트가 그대로 반환된다.
	if s.local.Len() == 0 {
		s.local.SeedDemoEvent(ctx)
	}

	if local := s.local.GetActiveEvent(); local != nil {
		return local, nil
	}
	return nil, apperrors.ErrNoActiveEvent
}

func (s *SyncServiceImpl) SaveEvent(ctx context.Context, event *model.Event) (uuid.UUID, StorageTier, error) {
	id, err := s.remote.SaveFullEvent(ctx, event)
	if err == nil {
		mirrored := *event
		mirrored.ID = id
		s.local.PutEvent(ctx, mirrored)
		return id, TierRemote, nil
	}

	s.log.Warn("remote save failed, saving locally", zap.Error(err))

	if event.ID != uuid.Nil {
		s.local.PutEvent(ctx, *event)
		return event.ID, TierLocal, nil
	}
	localID := s.local.CreateEvent(ctx, *event)
	return localID, TierLocal, nil
}

func (s *SyncServiceImpl) ListEvents(ctx context.Context) ([]*model.Event, error) {
	events, err := s.remote.GetAllEvents(ctx)
	if err == nil && len(events) > 0 {
		return events, nil
	}
	if err != nil {
		s.log.Warn("remote listing unavailable, falling back to local", zap.Error(err))
	}

	locals := s.local.Events()
	result := make([]*model.Event, 0, len(locals))
	for i := range locals {
		result = append(result, &locals[i])
	}
	return result, nil
}

func (s *SyncServiceImpl) ActivateEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.remote.SetActiveEvent(ctx, id); err != nil {
		return err
	}
	s.local.SetActiveEvent(ctx, id)
	return nil
}

func (s *SyncServiceImpl) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.remote.DeleteEvent(ctx, id); err != nil {
		return err
	}
	s.local.DeleteEvent(ctx, id)
	return nil
}
