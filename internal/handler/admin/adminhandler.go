package adminhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/dto"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

type UserService interface {
	Users(callerRole string) ([]domain.User, error)
	Approve(callerRole, userID, approverID string) error
}

type LedgerService interface {
	AwardByEmail(callerID, callerRole, email string, stars int64, reason string) (*domain.AwardResult, error)
}

type AdminHandler struct {
	users  UserService
	ledger LedgerService
}

func New(users UserService, ledger LedgerService) *AdminHandler {
	return &AdminHandler{
		users:  users,
		ledger: ledger,
	}
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	role := r.Header.Get("User-Role")

	users, err := h.users.Users(role)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		logger.Log.Error("error while fetching users", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.User, len(users))
	for i, user := range users {
		dtos[i] = dto.User{
			ID:             user.ID,
			Email:          user.Email,
			Name:           user.Name,
			Role:           user.Role,
			Status:         user.Status,
			StarsBalance:   user.StarsBalance,
			BonusesBalance: user.BonusesBalance,
			RegisteredAt:   user.RegisteredAt.Format(time.RFC3339),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(dtos); err != nil {
		logger.Log.Error("error while encoding users to JSON", logger.Error(err))
	}
}

func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")

	var approve dto.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&approve); err != nil {
		logger.Log.Warn("error while decoding an approve request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if approve.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	err := h.users.Approve(role, approve.UserID, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		logger.Log.Error("error while approving user", logger.String("user_id", approve.UserID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *AdminHandler) AwardStars(w http.ResponseWriter, r *http.Request) {
	actorID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")

	var award dto.AwardRequest
	if err := json.NewDecoder(r.Body).Decode(&award); err != nil {
		logger.Log.Warn("error while decoding an award request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := award.IsValid(); err != nil {
		logger.Log.Warn("invalid award fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.ledger.AwardByEmail(actorID, role, award.Email, award.Stars, award.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidStarCount):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			logger.Log.Error("error while awarding stars", logger.String("email", award.Email), logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	resp := dto.AwardResponse{
		StarsBalance:   result.Stars,
		BonusesBalance: result.Bonuses,
		BonusesGranted: result.BonusesGranted,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("error while encoding award response", logger.Error(err))
	}
}
