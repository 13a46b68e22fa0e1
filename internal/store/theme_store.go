package store

import (
	"context"
	"encoding/json"
	"sync"

	"trip-event-page/internal/model"
	"trip-event-page/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const themeStorageKey = "theme-storage"

// ThemeStore 테마 설정 스토어. 이벤트 스토어와 달리 버전 관리가 없다.
type ThemeStore struct {
	mu   sync.Mutex
	rdb  *redis.Client
	pref model.ThemePreference
	log  *zap.Logger
}

func NewThemeStore(rdb *redis.Client) *ThemeStore {
	return &ThemeStore{
		rdb:  rdb,
		pref: model.DefaultThemePreference(),
		log:  logger.WithComponent("store"),
	}
}

func (s *ThemeStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rdb == nil {
		return
	}

	raw, err := s.rdb.Get(ctx, themeStorageKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("failed to load theme storage", zap.Error(err))
		}
		return
	}

	var pref model.ThemePreference
	if err := json.Unmarshal(raw, &pref); err != nil {
		s.log.Warn("failed to decode theme storage, using defaults", zap.Error(err))
		return
	}
	s.pref = pref
}

func (s *ThemeStore) Get() model.ThemePreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pref
}

func (s *ThemeStore) Set(ctx context.Context, pref model.ThemePreference) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pref = pref

	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(pref)
	if err != nil {
		s.log.Error("failed to encode theme storage", zap.Error(err))
		return
	}
	if err := s.rdb.Set(ctx, themeStorageKey, raw, 0).Err(); err != nil {
		s.log.Error("failed to persist theme storage", zap.Error(err))
	}
}
