package repository

import (
	"context"
	"fmt"

	"trip-event-page/internal/model"
	apperrors "trip-event-page/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepository interface {
	// FindByEventID 위치 행과 경로 행(display_order ASC)을 가져온다.
	// 반환되는 LocationInfo의 Transport는 비어 있고, 경로는 펼쳐진 행으로 따로 돌려준다.
	// 행이 없으면 ErrLocationNotFound.
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.LocationInfo, []model.FlatTransportRoute, error)
	CollectIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
	DeleteRoutesByLocationIDs(ctx context.Context, locationIDs []uuid.UUID) error
	DeleteByEventID(ctx context.Context, eventID uuid.UUID) error
	Insert(ctx context.Context, eventID uuid.UUID, location model.LocationInfo) (uuid.UUID, error)
	InsertRoutes(ctx context.Context, locationID uuid.UUID, routes []model.FlatTransportRoute) error
}

type LocationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) LocationRepository {
	return &LocationRepositoryImpl{
		pool: pool,
	}
}

func (r *LocationRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.LocationInfo, []model.FlatTransportRoute, error) {
	query := `
		SELECT id, name, address, naver_map_url, kakao_map_url, note, pension_url, pension_link_title
		FROM locations
		WHERE event_id = $1
		LIMIT 1
	`

	var locationID uuid.UUID
	var location model.LocationInfo
	var naverMapURL, kakaoMapURL, note, pensionURL, pensionLinkTitle *string

	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&locationID,
		&location.Name,
		&location.Address,
		&naverMapURL,
		&kakaoMapURL,
		&note,
		&pensionURL,
		&pensionLinkTitle,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.ErrLocationNotFound
		}
		return nil, nil, err
	}

	location.NaverMapURL = deref(naverMapURL)
	location.KakaoMapURL = deref(kakaoMapURL)
	location.Note = deref(note)
	location.PensionURL = deref(pensionURL)
	location.PensionLinkTitle = deref(pensionLinkTitle)
	location.Transport = []model.TransportInfo{}

	routes, err := r.listRoutes(ctx, locationID)
	if err != nil {
		return nil, nil, err
	}

	return &location, routes, nil
}

func (r *LocationRepositoryImpl) listRoutes(ctx context.Context, locationID uuid.UUID) ([]model.FlatTransportRoute, error) {
	query := `
		SELECT type, from_place, to_place, time, display_order
		FROM transport_routes
		WHERE location_id = $1
		ORDER BY display_order ASC
	`

	rows, err := r.pool.Query(ctx, query, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]model.FlatTransportRoute, 0)
	for rows.Next() {
		var route model.FlatTransportRoute
		err := rows.Scan(
			&route.Type,
			&route.Route.From,
			&route.Route.To,
			&route.Route.Time,
			&route.DisplayOrder,
		)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

func (r *LocationRepositoryImpl) CollectIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM locations WHERE event_id = $1`, eventID)
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

func (r *LocationRepositoryImpl) DeleteRoutesByLocationIDs(ctx context.Context, locationIDs []uuid.UUID) error {
	if len(locationIDs) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx,
		`DELETE FROM transport_routes WHERE location_id = ANY($1)`,
		locationIDs,
	)
	return err
}

func (r *LocationRepositoryImpl) DeleteByEventID(ctx context.Context, eventID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM locations WHERE event_id = $1`, eventID)
	return err
}

func (r *LocationRepositoryImpl) Insert(ctx context.Context, eventID uuid.UUID, location model.LocationInfo) (uuid.UUID, error) {
	query := `
		INSERT INTO locations (event_id, name, address, naver_map_url, kakao_map_url, note, pension_url, pension_link_title)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		eventID,
		location.Name,
		location.Address,
		nullIfEmpty(location.NaverMapURL),
		nullIfEmpty(location.KakaoMapURL),
		nullIfEmpty(location.Note),
		nullIfEmpty(location.PensionURL),
		nullIfEmpty(location.PensionLinkTitle),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert location: %w", err)
	}
	return id, nil
}

func (r *LocationRepositoryImpl) InsertRoutes(ctx context.Context, locationID uuid.UUID, routes []model.FlatTransportRoute) error {
	query := `
		INSERT INTO transport_routes (location_id, type, from_place, to_place, time, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for i, route := range routes {
		_, err := r.pool.Exec(ctx, query,
			locationID,
			route.Type,
			route.Route.From,
			route.Route.To,
			route.Route.Time,
			route.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transport_route %d: %w", i+1, err)
		}
	}
	return nil
}
