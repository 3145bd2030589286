package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

const userColumns = `id, email, password, name, role, status, stars_balance, bonuses_balance, approved_at, approved_by, registered_at`

func (p *Postgres) CreateUser(email, hashedPassword, name string) (string, error) {
	id := uuid.NewString()
	_, err := p.DB.Exec(
		"INSERT INTO users (id, email, password, name, role, status) VALUES ($1, $2, $3, $4, $5, $6)",
		id, email, hashedPassword, name, domain.RoleDeveloper, domain.UserStatusPending,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			logger.Log.Warn("user already exists", logger.String("email", email))
			return "", domain.ErrUserExists
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

func (p *Postgres) UserByEmail(email string) (*domain.User, error) {
	row := p.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE email = $1", email)

	return scanUser(row)
}

func (p *Postgres) UserByID(id string) (*domain.User, error) {
	row := p.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE id = $1", id)

	return scanUser(row)
}

func (p *Postgres) Users() ([]domain.User, error) {
	rows, err := p.DB.Query("SELECT " + userColumns + " FROM users ORDER BY registered_at")
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	defer closeRows(rows)

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.Email, &user.Password, &user.Name, &user.Role, &user.Status,
			&user.StarsBalance, &user.BonusesBalance, &user.ApprovedAt, &user.ApprovedByID, &user.RegisteredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over users: %w", err)
	}

	return users, nil
}

func (p *Postgres) ApproveUser(userID, approverID string) error {
	result, err := p.DB.Exec(
		"UPDATE users SET status = $1, approved_at = now(), approved_by = $2 WHERE id = $3",
		domain.UserStatusActive, approverID, userID,
	)
	if err != nil {
		return fmt.Errorf("error approving user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected for approval: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Role, &user.Status,
		&user.StarsBalance, &user.BonusesBalance, &user.ApprovedAt, &user.ApprovedByID, &user.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return &user, nil
}

func closeRows(rows *sql.Rows) {
	err := rows.Close()
	if err != nil {
		logger.Log.Error("error closing rows", logger.Error(err))
	}
}
