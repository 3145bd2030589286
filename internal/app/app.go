package app

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/bazaan/dashboarddev/internal/config"
	"github.com/bazaan/dashboarddev/internal/postgres"
)

type App struct {
	Config *config.Config
	DB     *sql.DB
}

func New(cfg *config.Config) (*App, error) {
	db, err := initDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err = postgres.New(db).Bootstrap(); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("error closing database after bootstrap failure: %w", closeErr)
		}
		return nil, err
	}

	return &App{
		Config: cfg,
		DB:     db,
	}, nil
}

func initDB(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Ping(); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("error closing database after ping failure: %w", closeErr)
		}
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}
