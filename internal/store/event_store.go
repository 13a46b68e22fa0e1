package store

import (
	"context"
	"encoding/json"
	"sync"

	"trip-event-page/config"
	"trip-event-page/internal/model"
	"trip-event-page/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StoreVersion 스토어 스키마 버전. 버전이 올라가면 저장된 상태를 통째로 버린다.
const StoreVersion = 4

const eventStorageKey = "event-storage"

type storeState struct {
	Events        []model.Event `json:"events"`
	ActiveEventID *uuid.UUID    `json:"activeEventId"`
	IsAdmin       bool          `json:"isAdmin"`
}

// persistedEnvelope 저장 포맷: {state, version}
type persistedEnvelope struct {
	State   storeState `json:"state"`
	Version int        `json:"version"`
}

// EventStore 네트워크와 무관하게 동작하는 로컬 이벤트 스토어.
// 전체 상태를 고정 키 아래 JSON 한 건으로 redis에 저장한다.
// redis가 죽어 있어도 메모리 상태로 계속 동작한다 (저장 실패는 로그만).
type EventStore struct {
	mu    sync.Mutex
	rdb   *redis.Client
	admin config.AdminConfig
	state storeState
	log   *zap.Logger
}

func NewEventStore(rdb *redis.Client, admin config.AdminConfig) *EventStore {
	return &EventStore{
		rdb:   rdb,
		admin: admin,
		state: emptyState(),
		log:   logger.WithComponent("store"),
	}
}

func emptyState() storeState {
	return storeState{
		Events:        []model.Event{},
		ActiveEventID: nil,
		IsAdmin:       false,
	}
}

// Load 기동 시 저장된 상태를 복원한다.
// 키가 없거나, 디코드가 안 되거나, 저장된 버전이 현재보다 낮으면 빈 상태로 시작한다.
func (s *EventStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rdb == nil {
		return
	}

	raw, err := s.rdb.Get(ctx, eventStorageKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("failed to load event storage", zap.Error(err))
		}
		return
	}

	var envelope persistedEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		s.log.Warn("failed to decode event storage, starting empty", zap.Error(err))
		return
	}

	if envelope.Version < StoreVersion {
		// 버전이 낮으면 필드 마이그레이션 없이 전부 버린다
		s.log.Info("event storage version outdated, resetting",
			zap.Int("stored", envelope.Version), zap.Int("current", StoreVersion))
		s.state = emptyState()
		s.persistLocked(ctx)
		return
	}

	if envelope.State.Events == nil {
		envelope.State.Events = []model.Event{}
	}
	s.state = envelope.State
}

// GetActiveEvent activeEventId가 가리키는 이벤트를 돌려준다. 없으면 nil.
func (s *EventStore) GetActiveEvent() *model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ActiveEventID == nil {
		return nil
	}
	for _, e := range s.state.Events {
		if e.ID == *s.state.ActiveEventID {
			copied := e
			return &copied
		}
	}
	return nil
}

// SetActiveEvent 포인터를 무조건 바꾼다. id 존재 여부는 확인하지 않는다 (호출자 책임).
func (s *EventStore) SetActiveEvent(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ActiveEventID = &id
	s.persistLocked(ctx)
}

// CreateEvent 새 id를 부여해 추가하고 활성으로 만든다.
func (s *EventStore) CreateEvent(ctx context.Context, event model.Event) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	event.ID = id
	s.state.Events = append(s.state.Events, event)
	s.state.ActiveEventID = &id
	s.persistLocked(ctx)
	return id
}

// PutEvent 같은 id가 있으면 교체, 없으면 추가한다. 활성 포인터는 건드리지 않는다.
// 원격 저장 성공 후 로컬 상태를 따뜻하게 유지하는 미러링용.
func (s *EventStore) PutEvent(ctx context.Context, event model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.state.Events {
		if e.ID == event.ID {
			s.state.Events[i] = event
			s.persistLocked(ctx)
			return
		}
	}
	s.state.Events = append(s.state.Events, event)
	s.persistLocked(ctx)
}

// UpdateEvent nil이 아닌 필드만 shallow-merge한다. id가 없으면 아무 것도 하지 않는다.
func (s *EventStore) UpdateEvent(ctx context.Context, id uuid.UUID, patch model.EventPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Events {
		if s.state.Events[i].ID != id {
			continue
		}
		e := &s.state.Events[i]
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Subtitle != nil {
			e.Subtitle = patch.Subtitle
		}
		if patch.IsActive != nil {
			e.IsActive = *patch.IsActive
		}
		if patch.BackgroundType != nil {
			e.BackgroundType = *patch.BackgroundType
		}
		if patch.BackgroundValue != nil {
			e.BackgroundValue = *patch.BackgroundValue
		}
		if patch.DefaultTheme != nil {
			e.DefaultTheme = *patch.DefaultTheme
		}
		if patch.MainContent != nil {
			e.MainContent = patch.MainContent
		}
		if patch.Schedules != nil {
			e.Schedules = patch.Schedules
		}
		if patch.Location != nil {
			e.Location = *patch.Location
		}
		s.persistLocked(ctx)
		return
	}
}

// DeleteEvent 이벤트를 제거하고, 활성 이벤트였다면 포인터를 비운다.
func (s *EventStore) DeleteEvent(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]model.Event, 0, len(s.state.Events))
	for _, e := range s.state.Events {
		if e.ID != id {
			events = append(events, e)
		}
	}
	s.state.Events = events

	if s.state.ActiveEventID != nil && *s.state.ActiveEventID == id {
		s.state.ActiveEventID = nil
	}
	s.persistLocked(ctx)
}

// Events 전체 이벤트 스냅샷.
func (s *EventStore) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]model.Event, len(s.state.Events))
	copy(events, s.state.Events)
	return events
}

func (s *EventStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Events)
}

// SeedDemoEvent 비어 있는 첫 화면 대신 보여줄 예시 이벤트 한 건을 심는다.
func (s *EventStore) SeedDemoEvent(ctx context.Context) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	demo := DemoEvent()
	s.state.Events = append(s.state.Events, demo)
	s.state.ActiveEventID = &demo.ID
	s.persistLocked(ctx)
	return demo.ID
}

// Login 고정 계정과 비교해서 맞으면 admin 플래그를 올린다.
func (s *EventStore) Login(ctx context.Context, username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username != s.admin.Username || password != s.admin.Password {
		return false
	}
	s.state.IsAdmin = true
	s.persistLocked(ctx)
	return true
}

func (s *EventStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsAdmin = false
	s.persistLocked(ctx)
}

func (s *EventStore) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAdmin
}

// persistLocked 전체 상태를 직렬화해서 저장한다. 실패해도 호출자에게 올리지 않는다.
// 호출 전에 mu를 잡고 있어야 한다.
func (s *EventStore) persistLocked(ctx context.Context) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(persistedEnvelope{
		State:   s.state,
		Version: StoreVersion,
	})
	if err != nil {
		s.log.Error("failed to encode event storage", zap.Error(err))
		return
	}

	if err := s.rdb.Set(ctx, eventStorageKey, raw, 0).Err(); err != nil {
		s.log.Error("failed to persist event storage", zap.Error(err))
	}
}
