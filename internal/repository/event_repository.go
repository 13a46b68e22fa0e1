package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trip-event-page/internal/model"
	apperrors "trip-event-page/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	// FindActive is_active=true인 행을 찾는다. 없으면 ErrNoActiveEvent.
	FindActive(ctx context.Context) (*model.Event, error)
	// List 이벤트 행만 created_at DESC로 가져온다 (자식 데이터 없는 요약 뷰).
	List(ctx context.Context) ([]*model.Event, error)
	// Insert 이벤트 행만 삽입한다 (구 편집 플로우의 shell 생성).
	Insert(ctx context.Context, title string, subtitle *string) (uuid.UUID, error)
	// Upsert id가 없으면 삽입, 있으면 갱신. 저장된 id를 반환한다.
	Upsert(ctx context.Context, event *model.Event) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeactivateAll 모든 행의 active 플래그를 내린다.
	DeactivateAll(ctx context.Context) error
	Activate(ctx context.Context, id uuid.UUID) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, title, subtitle, is_active, background_type, background_value, default_theme, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	var subtitle, defaultTheme *string
	err := row.Scan(
		&event.ID,
		&event.Title,
		&subtitle,
		&event.IsActive,
		&event.BackgroundType,
		&event.BackgroundValue,
		&defaultTheme,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.Subtitle = subtitle
	if defaultTheme != nil {
		event.DefaultTheme = model.ThemeMode(*defaultTheme)
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindActive(ctx context.Context) (*model.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE is_active = TRUE LIMIT 1`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNoActiveEvent
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY created_at DESC`, eventColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) Insert(ctx context.Context, title string, subtitle *string) (uuid.UUID, error) {
	query := `
		INSERT INTO events (title, subtitle, is_active)
		VALUES ($1, $2, FALSE)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, title, subtitle).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert event: %w", err)
	}
	return id, nil
}

func (r *EventRepositoryImpl) Upsert(ctx context.Context, event *model.Event) (uuid.UUID, error) {
	backgroundType := event.BackgroundType
	if backgroundType == "" {
		backgroundType = model.BackgroundDefault
	}
	var defaultTheme *string
	if event.DefaultTheme != "" {
		s := string(event.DefaultTheme)
		defaultTheme = &s
	}

	var id uuid.UUID

	if event.ID == uuid.Nil {
		query := `
			INSERT INTO events (title, subtitle, is_active, background_type, background_value, default_theme)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		err := r.pool.QueryRow(ctx, query,
			event.Title, event.Subtitle, event.IsActive,
			backgroundType, event.BackgroundValue, defaultTheme,
		).Scan(&id)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to upsert event: %w", err)
		}
		return id, nil
	}

	query := `
		INSERT INTO events (id, title, subtitle, is_active, background_type, background_value, default_theme)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			is_active = EXCLUDED.is_active,
			background_type = EXCLUDED.background_type,
			background_value = EXCLUDED.background_value,
			default_theme = EXCLUDED.default_theme,
			updated_at = now()
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		event.ID, event.Title, event.Subtitle, event.IsActive,
		backgroundType, event.BackgroundValue, defaultTheme,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert event: %w", err)
	}
	return id, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) error {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *params.Title)
		argPos++
	}

	if params.Subtitle != nil {
		sets = append(sets, fmt.Sprintf("subtitle = $%d", argPos))
		args = append(args, *params.Subtitle)
		argPos++
	}

	if params.IsActive != nil {
		sets = append(sets, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *params.IsActive)
		argPos++
	}

	if len(sets) == 0 {
		return apperrors.ErrInvalidInput
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, id)

	query := fmt.Sprintf(`UPDATE events SET %s WHERE id = $%d`, strings.Join(sets, ", "), argPos)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// 자식 행 정리는 스토어의 ON DELETE CASCADE에 맡긴다
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) DeactivateAll(ctx context.Context) error {
	// "모든 행" 표현에 nil uuid 제외 필터를 쓰는 원래 동작 유지
	_, err := r.pool.Exec(ctx,
		`UPDATE events SET is_active = FALSE WHERE id <> $1`,
		uuid.Nil,
	)
	return err
}

func (r *EventRepositoryImpl) Activate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events SET is_active = TRUE, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
