package service

import (
	"fmt"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/internal/metrics"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

const (
	ReasonAdminAward   = "Admin award"
	ReasonTaskApproval = "Task approval"

	// Admin grants are capped per award by policy; the ledger itself only
	// requires a positive count.
	MaxAdminAwardStars = 3
)

type ledgerRepository interface {
	AwardStars(userID string, stars int64, reason string, taskID *string) (*domain.AwardResult, error)
	StarTransactions(userID string) ([]domain.StarTransaction, error)
}

type ledgerUserRepository interface {
	UserByEmail(email string) (*domain.User, error)
}

type notificationRepository interface {
	CreateNotification(notification domain.Notification) error
}

type LedgerService struct {
	ledger        ledgerRepository
	users         ledgerUserRepository
	notifications notificationRepository
	audit         auditRepository
}

func NewLedgerService(ledger ledgerRepository, users ledgerUserRepository, notifications notificationRepository, audit auditRepository) *LedgerService {
	return &LedgerService{
		ledger:        ledger,
		users:         users,
		notifications: notifications,
		audit:         audit,
	}
}

// Award credits stars to a user. Only admins may award; the check lives here
// rather than in each caller. The repository performs the balance update,
// ledger entry and bonus grants as one transaction, so a failure leaves
// everything untouched.
func (s *LedgerService) Award(callerID, callerRole, userID string, stars int64, reason string, taskID *string) (*domain.AwardResult, error) {
	if callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if stars <= 0 || stars > MaxAdminAwardStars {
		return nil, domain.ErrInvalidStarCount
	}
	if reason == "" {
		reason = ReasonAdminAward
	}

	result, err := s.ledger.AwardStars(userID, stars, reason, taskID)
	if err != nil {
		return nil, err
	}

	recordAward(s.notifications, userID, stars, result)
	appendAudit(s.audit, domain.AuditEntry{
		ActorID:  callerID,
		Action:   domain.AuditAward,
		Entity:   "USER",
		EntityID: userID,
		Detail:   fmt.Sprintf("%d star(s): %s", stars, reason),
	})

	return result, nil
}

// AwardByEmail resolves the target by email, as the admin grant form submits.
func (s *LedgerService) AwardByEmail(callerID, callerRole, email string, stars int64, reason string) (*domain.AwardResult, error) {
	if callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.UserByEmail(email)
	if err != nil {
		return nil, err
	}

	return s.Award(callerID, callerRole, user.ID, stars, reason, nil)
}

// Transactions lists the caller's ledger history. Admins may pass another
// user's ID to inspect their history instead.
func (s *LedgerService) Transactions(callerID, callerRole, userID string) ([]domain.StarTransaction, error) {
	target := callerID
	if userID != "" {
		if callerRole != domain.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		target = userID
	}

	return s.ledger.StarTransactions(target)
}

func recordAward(notifications notificationRepository, userID string, stars int64, result *domain.AwardResult) {
	metrics.StarsAwarded.Add(float64(stars))
	metrics.BonusesGranted.Add(float64(result.BonusesGranted))

	body := fmt.Sprintf("You received %d star(s).", stars)
	if result.BonusesGranted > 0 {
		body = fmt.Sprintf("You received %d star(s) and earned %d bonus(es).", stars, result.BonusesGranted)
	}

	err := notifications.CreateNotification(domain.Notification{
		UserID: userID,
		Title:  "Stars awarded",
		Body:   body,
		Level:  "INFO",
	})
	if err != nil {
		logger.Log.Error("error notifying award", logger.String("user_id", userID), logger.Error(err))
	}
}
