package starhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/dto"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

type LedgerService interface {
	Transactions(callerID, callerRole, userID string) ([]domain.StarTransaction, error)
}

type StarHandler struct {
	srv LedgerService
}

func New(srv LedgerService) *StarHandler {
	return &StarHandler{
		srv: srv,
	}
}

func (h *StarHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	callerID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")

	transactions, err := h.srv.Transactions(callerID, role, r.URL.Query().Get("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		logger.Log.Error("error while fetching star transactions", logger.String("user_id", callerID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.StarTransaction, len(transactions))
	for i, transaction := range transactions {
		dtos[i] = dto.StarTransaction{
			ID:        transaction.ID,
			UserID:    transaction.UserID,
			Stars:     transaction.Stars,
			Reason:    transaction.Reason,
			TaskID:    transaction.TaskID,
			CreatedAt: transaction.CreatedAt.Format(time.RFC3339),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(dtos); err != nil {
		logger.Log.Error("error while encoding star transactions to JSON", logger.Error(err))
	}
}
