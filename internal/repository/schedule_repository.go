package repository

import (
	"context"
	"fmt"

	"trip-event-page/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepository interface {
	// ListByEventID day ASC로 일차 목록을, 일차별 항목은 display_order ASC로 가져온다.
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]model.DaySchedule, error)
	// CollectIDs 이벤트에 속한 day_schedules 행 id를 모은다 (자식 삭제용).
	CollectIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
	DeleteItemsByScheduleIDs(ctx context.Context, scheduleIDs []uuid.UUID) error
	DeleteByEventID(ctx context.Context, eventID uuid.UUID) error
	InsertDay(ctx context.Context, eventID uuid.UUID, schedule model.DaySchedule) (uuid.UUID, error)
	// InsertItems display_order는 항목의 Order가 있으면 그 값, 없으면 위치(1-based).
	InsertItems(ctx context.Context, scheduleID uuid.UUID, items []model.ScheduleItem) error
}

type ScheduleRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) ScheduleRepository {
	return &ScheduleRepositoryImpl{
		pool: pool,
	}
}

func (r *ScheduleRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]model.DaySchedule, error) {
	query := `
		SELECT id, day, date
		FROM day_schedules
		WHERE event_id = $1
		ORDER BY day ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type dayRow struct {
		id       uuid.UUID
		schedule model.DaySchedule
	}

	dayRows := make([]dayRow, 0)
	for rows.Next() {
		var d dayRow
		if err := rows.Scan(&d.id, &d.schedule.Day, &d.schedule.Date); err != nil {
			return nil, err
		}
		dayRows = append(dayRows, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	schedules := make([]model.DaySchedule, 0, len(dayRows))
	for _, d := range dayRows {
		items, err := r.listItems(ctx, d.id)
		if err != nil {
			return nil, err
		}
		d.schedule.Items = items
		schedules = append(schedules, d.schedule)
	}
	return schedules, nil
}

func (r *ScheduleRepositoryImpl) listItems(ctx context.Context, scheduleID uuid.UUID) ([]model.ScheduleItem, error) {
	query := `
		SELECT id, display_order, time, duration, title, subtitle, is_highlight
		FROM schedule_items
		WHERE day_schedule_id = $1
		ORDER BY display_order ASC
	`

	rows, err := r.pool.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ScheduleItem, 0)
	for rows.Next() {
		var item model.ScheduleItem
		var duration, subtitle *string
		err := rows.Scan(
			&item.ID,
			&item.Order,
			&item.Time,
			&duration,
			&item.Title,
			&subtitle,
			&item.IsHighlight,
		)
		if err != nil {
			return nil, err
		}
		item.Duration = deref(duration)
		item.Subtitle = deref(subtitle)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ScheduleRepositoryImpl) CollectIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM day_schedules WHERE event_id = $1`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ScheduleRepositoryImpl) DeleteItemsByScheduleIDs(ctx context.Context, scheduleIDs []uuid.UUID) error {
	if len(scheduleIDs) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx,
		`DELETE FROM schedule_items WHERE day_schedule_id = ANY($1)`,
		scheduleIDs,
	)
	return err
}

func (r *ScheduleRepositoryImpl) DeleteByEventID(ctx context.Context, eventID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM day_schedules WHERE event_id = $1`, eventID)
	return err
}

func (r *ScheduleRepositoryImpl) InsertDay(ctx context.Context, eventID uuid.UUID, schedule model.DaySchedule) (uuid.UUID, error) {
	query := `
		INSERT INTO day_schedules (event_id, day, date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, eventID, schedule.Day, schedule.Date).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert day_schedule: %w", err)
	}
	return id, nil
}

func (r *ScheduleRepositoryImpl) InsertItems(ctx context.Context, scheduleID uuid.UUID, items []model.ScheduleItem) error {
	query := `
		INSERT INTO schedule_items (day_schedule_id, display_order, time, duration, title, subtitle, is_highlight)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for i, item := range items {
		order := item.Order
		if order == 0 {
			order = i + 1
		}
		_, err := r.pool.Exec(ctx, query,
			scheduleID,
			order,
			item.Time,
			nullIfEmpty(item.Duration),
			item.Title,
			nullIfEmpty(item.Subtitle),
			item.IsHighlight,
		)
		if err != nil {
			return fmt.Errorf("failed to insert schedule_item %d: %w", i+1, err)
		}
	}
	return nil
}
