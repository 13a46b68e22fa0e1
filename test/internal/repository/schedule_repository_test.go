package repository

import (
	"context"
	"testing"

	"trip-event-page/internal/model"
	"trip-event-page/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepository_InsertDay(t *testing.T) {
	repo := repository.NewScheduleRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")

		id, err := repo.InsertDay(ctx, eventID, model.DaySchedule{Day: 1, Date: "2/27 (금)"})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, 1, countRows(t, "day_schedules"))
	})
}

func TestScheduleRepository_InsertItems(t *testing.T) {
	repo := repository.NewScheduleRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success_ExplicitOrder", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")
		scheduleID, err := repo.InsertDay(ctx, eventID, model.DaySchedule{Day: 1, Date: "2/27 (금)"})
		require.NoError(t, err)

		items := []model.ScheduleItem{
			{Order: 2, Time: "12:00", Title: "점심"},
			{Order: 1, Time: "10:00", Title: "출발", IsHighlight: true},
		}
		require.NoError(t, repo.InsertItems(ctx, scheduleID, items))

		schedules, err := repo.ListByEventID(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		require.Len(t, schedules[0].Items, 2)
		// 삽입 순서가 아니라 display_order 순서로 돌아온다
		assert.Equal(t, "출발", schedules[0].Items[0].Title)
		assert.Equal(t, "점심", schedules[0].Items[1].Title)
		assert.True(t, schedules[0].Items[0].IsHighlight)
	})

	t.Run("Success_PositionalOrderWhenZero", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")
		scheduleID, err := repo.InsertDay(ctx, eventID, model.DaySchedule{Day: 1, Date: "2/27 (금)"})
		require.NoError(t, err)

		// Order 미지정이면 위치(1-based)가 부여된다
		items := []model.ScheduleItem{
			{Time: "10:00", Title: "첫째"},
			{Time: "11:00", Title: "둘째"},
			{Time: "12:00", Title: "셋째"},
		}
		require.NoError(t, repo.InsertItems(ctx, scheduleID, items))

		schedules, err := repo.ListByEventID(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, schedules[0].Items, 3)
		assert.Equal(t, 1, schedules[0].Items[0].Order)
		assert.Equal(t, "첫째", schedules[0].Items[0].Title)
		assert.Equal(t, 3, schedules[0].Items[2].Order)
		assert.Equal(t, "셋째", schedules[0].Items[2].Title)
	})
}

func TestScheduleRepository_ListByEventID(t *testing.T) {
	repo := repository.NewScheduleRepository(getTestDB())
	ctx := context.Background()

	t.Run("EmptyWhenNoDays", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")

		schedules, err := repo.ListByEventID(ctx, eventID)

		require.NoError(t, err)
		assert.Empty(t, schedules)
	})

	t.Run("DaysAscending", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")
		// 역순으로 넣어도 day ASC로 돌아와야 한다
		_, err := repo.InsertDay(ctx, eventID, model.DaySchedule{Day: 3, Date: "3/1 (일)"})
		require.NoError(t, err)
		_, err = repo.InsertDay(ctx, eventID, model.DaySchedule{Day: 1, Date: "2/27 (금)"})
		require.NoError(t, err)
		_, err = repo.InsertDay(ctx, eventID, model.DaySchedule{Day: 2, Date: "2/28 (토)"})
		require.NoError(t, err)

		schedules, err := repo.ListByEventID(ctx, eventID)

		require.NoError(t, err)
		require.Len(t, schedules, 3)
		assert.Equal(t, 1, schedules[0].Day)
		assert.Equal(t, "2/27 (금)", schedules[0].Date)
		assert.Equal(t, 2, schedules[1].Day)
		assert.Equal(t, 3, schedules[2].Day)
	})
}

func TestScheduleRepository_Delete(t *testing.T) {
	repo := repository.NewScheduleRepository(getTestDB())
	ctx := context.Background()

	t.Run("CollectIDsThenDeleteItemsAndDays", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")
		scheduleID, err := repo.InsertDay(ctx, eventID, model.DaySchedule{Day: 1, Date: "2/27 (금)"})
		require.NoError(t, err)
		require.NoError(t, repo.InsertItems(ctx, scheduleID, []model.ScheduleItem{
			{Time: "10:00", Title: "출발"},
		}))

		ids, err := repo.CollectIDs(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, ids, 1)
		assert.Equal(t, scheduleID, ids[0])

		require.NoError(t, repo.DeleteItemsByScheduleIDs(ctx, ids))
		require.NoError(t, repo.DeleteByEventID(ctx, eventID))

		assert.Equal(t, 0, countRows(t, "schedule_items"))
		assert.Equal(t, 0, countRows(t, "day_schedules"))
	})

	t.Run("DeleteItemsWithEmptyIDsIsNoop", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		err := repo.DeleteItemsByScheduleIDs(ctx, []uuid.UUID{})

		require.NoError(t, err)
	})
}
