package service

import (
	"context"
	"sort"

	"trip-event-page/internal/model"
	"trip-event-page/internal/repository"
	apperrors "trip-event-page/pkg/app_errors"
	"trip-event-page/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventService 원격 관계형 스토어(events 외 5개 자식 테이블)와
// 이벤트 모델 사이의 게이트웨이.
type EventService interface {
	// GetEventByID 전체 데이터를 조립해서 가져온다. 자식 조회 실패는 빈 값으로 관대하게 처리.
	GetEventByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	// GetActiveEvent 활성 이벤트를 전체 조립으로 가져온다.
	// 자식 조회가 하나라도 실패하면 부분 객체 대신 ErrNoActiveEvent (all-or-nothing).
	GetActiveEvent(ctx context.Context) (*model.Event, error)
	// GetAllEvents 이벤트 행만 가져오는 요약 뷰. 자식 데이터는 빈 값.
	GetAllEvents(ctx context.Context) ([]*model.Event, error)
	// SetActiveEvent 전체 해제 → 대상 설정의 2단계 갱신. 트랜잭션 없음.
	SetActiveEvent(ctx context.Context, id uuid.UUID) error
	// SaveFullEvent 전체 객체 그래프 저장: 부모 upsert 후 자식 전부 삭제하고 다시 삽입.
	// 자식 쓰기 실패는 로그만 남기고 삼킨다. 부모 upsert 성공이면 id를 반환.
	SaveFullEvent(ctx context.Context, event *model.Event) (uuid.UUID, error)
	// CreateEvent 이벤트 행만 생성하는 구 플로우.
	CreateEvent(ctx context.Context, title string, subtitle *string) (uuid.UUID, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type EventServiceImpl struct {
	eventRepo    repository.EventRepository
	contentRepo  repository.ContentRepository
	scheduleRepo repository.ScheduleRepository
	locationRepo repository.LocationRepository
	log          *zap.Logger
}

func NewEventService(
	eventRepo repository.EventRepository,
	contentRepo repository.ContentRepository,
	scheduleRepo repository.ScheduleRepository,
	locationRepo repository.LocationRepository,
) EventService {
	return &EventServiceImpl{
		eventRepo:    eventRepo,
		contentRepo:  contentRepo,
		scheduleRepo: scheduleRepo,
		locationRepo: locationRepo,
		log:          logger.WithComponent("service"),
	}
}

func (s *EventServiceImpl) GetEventByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cards, err := s.contentRepo.ListByEventID(ctx, id)
	if err != nil {
		s.log.Error("failed to fetch main content", zap.String("event_id", id.String()), zap.Error(err))
		cards = []model.ContentCard{}
	}
	event.MainContent = cards

	schedules, err := s.scheduleRepo.ListByEventID(ctx, id)
	if err != nil {
		s.log.Error("failed to fetch schedules", zap.String("event_id", id.String()), zap.Error(err))
		schedules = []model.DaySchedule{}
	}
	sortScheduleItems(schedules)
	event.Schedules = schedules

	event.Location = s.fetchLocation(ctx, id)
	return event, nil
}

func (s *EventServiceImpl) GetActiveEvent(ctx context.Context) (*model.Event, error) {
	event, err := s.eventRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.contentRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		s.log.Error("failed to fetch main content", zap.String("event_id", event.ID.String()), zap.Error(err))
		return nil, apperrors.ErrNoActiveEvent
	}

	schedules, err := s.scheduleRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		s.log.Error("failed to fetch schedules", zap.String("event_id", event.ID.String()), zap.Error(err))
		return nil, apperrors.ErrNoActiveEvent
	}

	location, routes, err := s.locationRepo.FindByEventID(ctx, event.ID)
	if err != nil {
		// 위치가 없는 것도 전체 실패로 취급한다 (부분 객체는 내보내지 않음)
		s.log.Error("failed to fetch location", zap.String("event_id", event.ID.String()), zap.Error(err))
		return nil, apperrors.ErrNoActiveEvent
	}

	sortScheduleItems(schedules)
	location.Transport = model.GroupTransport(routes)

	event.MainContent = cards
	event.Schedules = schedules
	event.Location = *location
	return event, nil
}

func (s *EventServiceImpl) GetAllEvents(ctx context.Context) ([]*model.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// 요약 뷰: 자식 데이터는 채우지 않는다
	for _, event := range events {
		event.MainContent = []model.ContentCard{}
		event.Schedules = []model.DaySchedule{}
		event.Location = model.LocationInfo{Transport: []model.TransportInfo{}}
	}
	return events, nil
}

func (s *EventServiceImpl) SetActiveEvent(ctx context.Context, id uuid.UUID) error {
	// 1단계와 2단계 사이에 실패하면 활성 이벤트가 0건이 될 수 있다.
	// 호출자는 실패를 "상태가 비일관할 수 있음"으로 취급하고 다시 조회해야 한다.
	if err := s.eventRepo.DeactivateAll(ctx); err != nil {
		return err
	}
	return s.eventRepo.Activate(ctx, id)
}

func (s *EventServiceImpl) SaveFullEvent(ctx context.Context, event *model.Event) (uuid.UUID, error) {
	// 1. events 행 upsert. 여기가 실패하면 전체 실패.
	eventID, err := s.eventRepo.Upsert(ctx, event)
	if err != nil {
		return uuid.Nil, err
	}

	log := s.log.With(zap.String("event_id", eventID.String()))

	// 2. 기존 자식 행 전부 삭제 (새 데이터와 같더라도 무조건 wipe)
	if err := s.contentRepo.DeleteByEventID(ctx, eventID); err != nil {
		log.Error("failed to delete main_content", zap.Error(err))
	}

	scheduleIDs, err := s.scheduleRepo.CollectIDs(ctx, eventID)
	if err != nil {
		log.Error("failed to collect day_schedule ids", zap.Error(err))
	} else if err := s.scheduleRepo.DeleteItemsByScheduleIDs(ctx, scheduleIDs); err != nil {
		log.Error("failed to delete schedule_items", zap.Error(err))
	}
	if err := s.scheduleRepo.DeleteByEventID(ctx, eventID); err != nil {
		log.Error("failed to delete day_schedules", zap.Error(err))
	}

	locationIDs, err := s.locationRepo.CollectIDs(ctx, eventID)
	if err != nil {
		log.Error("failed to collect location ids", zap.Error(err))
	} else if err := s.locationRepo.DeleteRoutesByLocationIDs(ctx, locationIDs); err != nil {
		log.Error("failed to delete transport_routes", zap.Error(err))
	}
	if err := s.locationRepo.DeleteByEventID(ctx, eventID); err != nil {
		log.Error("failed to delete locations", zap.Error(err))
	}

	// 3. main_content 다시 삽입
	if len(event.MainContent) > 0 {
		if err := s.contentRepo.InsertMany(ctx, eventID, event.MainContent); err != nil {
			log.Error("failed to insert main_content", zap.Error(err))
		}
	}

	// 4. day_schedules + schedule_items 다시 삽입
	for _, schedule := range event.Schedules {
		scheduleID, err := s.scheduleRepo.InsertDay(ctx, eventID, schedule)
		if err != nil {
			log.Error("failed to insert day_schedule", zap.Int("day", schedule.Day), zap.Error(err))
			continue
		}
		if len(schedule.Items) > 0 {
			if err := s.scheduleRepo.InsertItems(ctx, scheduleID, schedule.Items); err != nil {
				log.Error("failed to insert schedule_items", zap.Int("day", schedule.Day), zap.Error(err))
			}
		}
	}

	// 5. location + transport_routes 다시 삽입 (이름이 있을 때만)
	if event.Location.Name != "" {
		locationID, err := s.locationRepo.Insert(ctx, eventID, event.Location)
		if err != nil {
			log.Error("failed to insert location", zap.Error(err))
		} else {
			routes := model.FlattenTransport(event.Location.Transport)
			if len(routes) > 0 {
				if err := s.locationRepo.InsertRoutes(ctx, locationID, routes); err != nil {
					log.Error("failed to insert transport_routes", zap.Error(err))
				}
			}
		}
	}

	return eventID, nil
}

func (s *EventServiceImpl) CreateEvent(ctx context.Context, title string, subtitle *string) (uuid.UUID, error) {
	return s.eventRepo.Insert(ctx, title, subtitle)
}

func (s *EventServiceImpl) UpdateEvent(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) error {
	return s.eventRepo.Update(ctx, id, params)
}

func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return s.eventRepo.Delete(ctx, id)
}

// fetchLocation 위치가 없거나 조회가 실패하면 빈 LocationInfo를 돌려준다 (관대한 경로).
func (s *EventServiceImpl) fetchLocation(ctx context.Context, eventID uuid.UUID) model.LocationInfo {
	location, routes, err := s.locationRepo.FindByEventID(ctx, eventID)
	if err != nil {
		if err != apperrors.ErrLocationNotFound {
			s.log.Error("failed to fetch location", zap.String("event_id", eventID.String()), zap.Error(err))
		}
		return model.LocationInfo{Transport: []model.TransportInfo{}}
	}
	location.Transport = model.GroupTransport(routes)
	return *location
}

// sortScheduleItems 스토어가 이미 정렬해 주더라도 일차별 항목을 display_order로 한 번 더 정렬한다.
func sortScheduleItems(schedules []model.DaySchedule) {
	for i := range schedules {
		items := schedules[i].Items
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].Order < items[b].Order
		})
	}
}
