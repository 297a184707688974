package db

import (
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	config "github.com/indexly/subgraph-store/configs"
	"github.com/rs/zerolog/log"
)

// RunMigrations applies the schema migrations for the dynamic data source
// relations against the configured Postgres database.
func RunMigrations() error {
	cfg := &config.Cfg.Postgres
	if cfg.Host == "" {
		return fmt.Errorf("postgres host is not configured")
	}

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.Username),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
		cfg.Database,
		sslMode,
	)

	m, err := migrate.New("file://db/pg_migrations", dbURL)
	if err != nil {
		return err
	}
	defer m.Close()

	log.Info().Msg("Running Postgres migrations")
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	log.Info().Msg("Postgres migrations completed")

	return nil
}
