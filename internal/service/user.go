package service

import (
	"errors"
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/bazaan/dashboarddev/internal/config"
	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

type userRepository interface {
	CreateUser(email, hashedPassword, name string) (string, error)
	UserByEmail(email string) (*domain.User, error)
	Users() ([]domain.User, error)
	ApproveUser(userID, approverID string) error
}

type auditRepository interface {
	AppendAudit(entry domain.AuditEntry) error
}

type UserService struct {
	config *config.Config
	repo   userRepository
	audit  auditRepository
}

func NewUserService(repo userRepository, audit auditRepository, config *config.Config) *UserService {
	return &UserService{
		repo:   repo,
		audit:  audit,
		config: config,
	}
}

// Register creates a PENDING account; an admin has to approve it before login
// succeeds.
func (s *UserService) Register(email, password, name string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.Warn("error while hashing password")
		return "", fmt.Errorf("error while hashing password: %w", err)
	}

	return s.repo.CreateUser(email, string(hashedPassword), name)
}

func (s *UserService) Login(email, password string) (string, error) {
	user, err := s.repo.UserByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Log.Warn("incorrect login", logger.String("email", email))
			return "", domain.ErrIncorrectCredentials
		}
		return "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		logger.Log.Warn("incorrect password", logger.String("email", email))
		return "", domain.ErrIncorrectCredentials
	}

	if user.Status != domain.UserStatusActive {
		logger.Log.Warn("login before approval", logger.String("email", email))
		return "", domain.ErrUserNotApproved
	}

	return generateJWTToken(user.ID, user.Role, s.config.PrivateKey)
}

func (s *UserService) Approve(callerRole, userID, approverID string) error {
	if callerRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.repo.ApproveUser(userID, approverID); err != nil {
		return err
	}

	appendAudit(s.audit, domain.AuditEntry{
		ActorID:  approverID,
		Action:   domain.AuditApprove,
		Entity:   "USER",
		EntityID: userID,
	})

	return nil
}

func (s *UserService) Users(callerRole string) ([]domain.User, error) {
	if callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	return s.repo.Users()
}

func generateJWTToken(userID, role, privateKey string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(privateKey))
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return signedToken, nil
}

func appendAudit(audit auditRepository, entry domain.AuditEntry) {
	if err := audit.AppendAudit(entry); err != nil {
		logger.Log.Error("error appending audit entry", logger.String("entity", entry.Entity), logger.Error(err))
	}
}
