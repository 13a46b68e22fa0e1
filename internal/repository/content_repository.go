package repository

import (
	"context"
	"fmt"

	"trip-event-page/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContentRepository interface {
	// ListByEventID display_order ASC로 카드 목록을 가져온다.
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]model.ContentCard, error)
	DeleteByEventID(ctx context.Context, eventID uuid.UUID) error
	// InsertMany 들어온 순서대로 display_order = 위치(1-based)를 부여해 삽입한다.
	InsertMany(ctx context.Context, eventID uuid.UUID, cards []model.ContentCard) error
}

type ContentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) ContentRepository {
	return &ContentRepositoryImpl{
		pool: pool,
	}
}

func (r *ContentRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]model.ContentCard, error) {
	query := `
		SELECT id, icon, title, description, image_url, detail_text, detail_image_url, is_highlight
		FROM main_content
		WHERE event_id = $1
		ORDER BY display_order ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]model.ContentCard, 0)
	for rows.Next() {
		var card model.ContentCard
		var imageURL, detailText, detailImageURL *string
		err := rows.Scan(
			&card.ID,
			&card.Icon,
			&card.Title,
			&card.Description,
			&imageURL,
			&detailText,
			&detailImageURL,
			&card.IsHighlight,
		)
		if err != nil {
			return nil, err
		}
		card.ImageURL = deref(imageURL)
		card.DetailText = deref(detailText)
		card.DetailImageURL = deref(detailImageURL)
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (r *ContentRepositoryImpl) DeleteByEventID(ctx context.Context, eventID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM main_content WHERE event_id = $1`, eventID)
	return err
}

func (r *ContentRepositoryImpl) InsertMany(ctx context.Context, eventID uuid.UUID, cards []model.ContentCard) error {
	query := `
		INSERT INTO main_content (event_id, icon, title, description, image_url, detail_text, detail_image_url, is_highlight, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for i, card := range cards {
		_, err := r.pool.Exec(ctx, query,
			eventID,
			card.Icon,
			card.Title,
			card.Description,
			nullIfEmpty(card.ImageURL),
			nullIfEmpty(card.DetailText),
			nullIfEmpty(card.DetailImageURL),
			card.IsHighlight,
			i+1,
		)
		if err != nil {
			return fmt.Errorf("failed to insert main_content row %d: %w", i+1, err)
		}
	}
	return nil
}
