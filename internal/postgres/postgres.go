package postgres

import (
	"database/sql"
	"fmt"

	"github.com/bazaan/dashboarddev/pkg/logger"
)

const transactionRollbackError = "error rolling back transaction"

// unique_violation
const pgUniqueViolation = "23505"

type Postgres struct {
	DB *sql.DB
}

func New(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

func (p *Postgres) Close() error {
	return p.DB.Close()
}

// Bootstrap creates the schema. The partial unique index on work_sessions is
// what makes the one-open-session-per-user invariant hold under concurrent
// starts; application code only reacts to its violation.
func (p *Postgres) Bootstrap() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'DEVELOPER',
			status TEXT NOT NULL DEFAULT 'PENDING',
			stars_balance BIGINT NOT NULL DEFAULT 0,
			bonuses_balance BIGINT NOT NULL DEFAULT 0,
			approved_at TIMESTAMPTZ,
			approved_by UUID,
			registered_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS star_transactions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (id),
			stars BIGINT NOT NULL,
			reason TEXT NOT NULL,
			task_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bonuses (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (id),
			type TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS work_sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (id),
			status TEXT NOT NULL,
			started_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			break_start TIMESTAMPTZ,
			break_end TIMESTAMPTZ,
			break_seconds BIGINT NOT NULL DEFAULT 0,
			ended_at TIMESTAMPTZ
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS work_sessions_one_open
			ON work_sessions (user_id) WHERE status IN ('ACTIVE', 'BREAK')`,
		`CREATE TABLE IF NOT EXISTS projects (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			brief TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT 'MEDIUM',
			order_index INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT 'MEDIUM',
			status TEXT NOT NULL DEFAULT 'NOT_STARTED',
			deadline TIMESTAMPTZ,
			assignee_id UUID REFERENCES users (id),
			project_id UUID REFERENCES projects (id),
			recurrence TEXT NOT NULL DEFAULT 'NONE',
			order_index INT NOT NULL DEFAULT 0,
			time_estimate_mins INT NOT NULL DEFAULT 0,
			stars_awarded BIGINT NOT NULL DEFAULT 0,
			approved_by UUID,
			completed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT 'OTHER',
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL,
			progress INT NOT NULL DEFAULT 0,
			project_id UUID REFERENCES projects (id),
			owner_id UUID NOT NULL REFERENCES users (id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			scope TEXT NOT NULL DEFAULT 'PERSONAL',
			project_id UUID REFERENCES projects (id),
			author_id UUID NOT NULL REFERENCES users (id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS reports (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'DAILY',
			author_id UUID NOT NULL REFERENCES users (id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users (id),
			title TEXT NOT NULL,
			body TEXT NOT NULL DEFAULT '',
			level TEXT NOT NULL DEFAULT 'INFO',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS audit_log (
			id UUID PRIMARY KEY,
			actor_id UUID NOT NULL,
			action TEXT NOT NULL,
			entity TEXT NOT NULL,
			entity_id TEXT NOT NULL DEFAULT '',
			detail TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, statement := range statements {
		if _, err := p.DB.Exec(statement); err != nil {
			return fmt.Errorf("error bootstrapping schema: %w", err)
		}
	}

	return nil
}

func rollback(tx *sql.Tx) {
	err := tx.Rollback()
	if err != nil {
		logger.Log.Error(transactionRollbackError, logger.Error(err))
	}
}
