package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

// AwardStars credits stars to a user and grants every bonus threshold the
// award crosses, in one transaction. The user row is locked for the duration
// so concurrent awards serialize and the crossing count stays exact.
func (p *Postgres) AwardStars(userID string, stars int64, reason string, taskID *string) (*domain.AwardResult, error) {
	tx, err := p.DB.BeginTx(context.Background(), nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	result, err := award(tx, userID, stars, reason, taskID)
	if err != nil {
		rollback(tx)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		rollback(tx)
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return result, nil
}

func award(tx *sql.Tx, userID string, stars int64, reason string, taskID *string) (*domain.AwardResult, error) {
	var previousStars, previousBonuses int64
	err := tx.QueryRow("SELECT stars_balance, bonuses_balance FROM users WHERE id = $1 FOR UPDATE", userID).
		Scan(&previousStars, &previousBonuses)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warn("award target not found", logger.String("user_id", userID))
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("error locking user balance: %w", err)
	}

	newStars := previousStars + stars
	bonusesToAdd := domain.BonusesToGrant(previousStars, stars)

	_, err = tx.Exec(
		"UPDATE users SET stars_balance = $1, bonuses_balance = bonuses_balance + $2 WHERE id = $3",
		newStars, bonusesToAdd, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating user balance: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO star_transactions (id, user_id, stars, reason, task_id) VALUES ($1, $2, $3, $4, $5)",
		uuid.NewString(), userID, stars, reason, taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("error inserting star transaction: %w", err)
	}

	for i := int64(0); i < bonusesToAdd; i++ {
		_, err = tx.Exec(
			"INSERT INTO bonuses (id, user_id, type, status) VALUES ($1, $2, $3, $4)",
			uuid.NewString(), userID, domain.BonusTypeAuto, domain.BonusActive,
		)
		if err != nil {
			return nil, fmt.Errorf("error inserting bonus: %w", err)
		}
	}

	return &domain.AwardResult{
		Stars:          newStars,
		Bonuses:        previousBonuses + bonusesToAdd,
		BonusesGranted: bonusesToAdd,
	}, nil
}

// AwardTaskStars records the approval on the task row and credits the
// assignee inside the same transaction, so a failed award leaves the task
// unapproved as well.
func (p *Postgres) AwardTaskStars(taskID, assigneeID, approverID string, stars int64, reason string) (*domain.AwardResult, error) {
	tx, err := p.DB.BeginTx(context.Background(), nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	result, err := tx.Exec(
		`UPDATE tasks SET stars_awarded = $1, approved_by = $2,
			completed_at = COALESCE(completed_at, now()), updated_at = now()
			WHERE id = $3 AND stars_awarded = 0`,
		stars, approverID, taskID,
	)
	if err != nil {
		rollback(tx)
		return nil, fmt.Errorf("error marking task approved: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		rollback(tx)
		return nil, fmt.Errorf("error checking rows affected for task approval: %w", err)
	}
	if affected == 0 {
		rollback(tx)
		return nil, domain.ErrStarsAlreadyAwarded
	}

	awarded, err := award(tx, assigneeID, stars, reason, &taskID)
	if err != nil {
		rollback(tx)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		rollback(tx)
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return awarded, nil
}

func (p *Postgres) StarTransactions(userID string) ([]domain.StarTransaction, error) {
	rows, err := p.DB.Query(
		"SELECT id, user_id, stars, reason, task_id, created_at FROM star_transactions WHERE user_id = $1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching star transactions: %w", err)
	}
	defer closeRows(rows)

	var transactions []domain.StarTransaction
	for rows.Next() {
		var transaction domain.StarTransaction
		err := rows.Scan(
			&transaction.ID, &transaction.UserID, &transaction.Stars,
			&transaction.Reason, &transaction.TaskID, &transaction.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning star transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over star transactions: %w", err)
	}

	return transactions, nil
}
