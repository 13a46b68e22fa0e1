package database

import (
	"context"
	"database/sql"
	"fmt"
	"trip-event-page/config"
	"trip-event-page/migrations"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql용 "pgx" 드라이버 등록
	"github.com/pressly/goose/v3"
)

// Migrate 내장된 goose 마이그레이션을 전부 적용한다.
// goose는 database/sql을 요구하므로 pgxpool과 별도로 *sql.DB를 연다.
func Migrate(ctx context.Context, cfg *config.DatabaseConfig) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("migrate: open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("migrate: provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate: up: %w", err)
	}

	return nil
}
