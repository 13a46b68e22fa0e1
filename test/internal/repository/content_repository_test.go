package repository

import (
	"context"
	"testing"

	"trip-event-page/internal/model"
	"trip-event-page/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRepository_InsertMany(t *testing.T) {
	repo := repository.NewContentRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success_PreservesInputOrder", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")
		cards := []model.ContentCard{
			{Icon: "🏖️", Title: "첫 번째", Description: "설명 1"},
			{Icon: "🍖", Title: "두 번째", Description: "설명 2", IsHighlight: true},
			{Icon: "🎆", Title: "세 번째", Description: "설명 3"},
		}

		err := repo.InsertMany(ctx, eventID, cards)

		require.NoError(t, err)
		listed, err := repo.ListByEventID(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		// 입력 순서 = display_order 순서
		assert.Equal(t, "첫 번째", listed[0].Title)
		assert.Equal(t, "두 번째", listed[1].Title)
		assert.Equal(t, "세 번째", listed[2].Title)
		assert.True(t, listed[1].IsHighlight)
	})

	t.Run("Success_OptionalFields", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")
		cards := []model.ContentCard{
			{
				Icon:           "📷",
				Title:          "이미지 카드",
				Description:    "설명",
				ImageURL:       "https://example.com/a.jpg",
				DetailText:     "팝업 내용",
				DetailImageURL: "https://example.com/b.jpg",
			},
			{Icon: "✏️", Title: "텍스트 카드", Description: "설명"},
		}

		err := repo.InsertMany(ctx, eventID, cards)

		require.NoError(t, err)
		listed, err := repo.ListByEventID(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "https://example.com/a.jpg", listed[0].ImageURL)
		assert.Equal(t, "팝업 내용", listed[0].DetailText)
		// 빈 문자열은 NULL로 저장되고 다시 빈 문자열로 돌아온다
		assert.Equal(t, "", listed[1].ImageURL)
		assert.Equal(t, "", listed[1].DetailText)
	})
}

func TestContentRepository_ListByEventID(t *testing.T) {
	repo := repository.NewContentRepository(getTestDB())
	ctx := context.Background()

	t.Run("EmptyWhenNoCards", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")

		listed, err := repo.ListByEventID(ctx, eventID)

		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	t.Run("ScopedToEvent", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		firstID := createTestEvent(t, "First")
		secondID := createTestEvent(t, "Second")
		require.NoError(t, repo.InsertMany(ctx, firstID, []model.ContentCard{
			{Icon: "🏖️", Title: "첫 이벤트 카드", Description: "설명"},
		}))
		require.NoError(t, repo.InsertMany(ctx, secondID, []model.ContentCard{
			{Icon: "🍖", Title: "둘째 이벤트 카드", Description: "설명"},
		}))

		listed, err := repo.ListByEventID(ctx, firstID)

		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "첫 이벤트 카드", listed[0].Title)
	})
}

func TestContentRepository_DeleteByEventID(t *testing.T) {
	repo := repository.NewContentRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")
		require.NoError(t, repo.InsertMany(ctx, eventID, []model.ContentCard{
			{Icon: "🏖️", Title: "카드", Description: "설명"},
		}))

		err := repo.DeleteByEventID(ctx, eventID)

		require.NoError(t, err)
		assert.Equal(t, 0, countRows(t, "main_content"))
	})

	t.Run("NoopWhenEmpty", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		eventID := createTestEvent(t, "Event")

		err := repo.DeleteByEventID(ctx, eventID)

		require.NoError(t, err)
	})
}
