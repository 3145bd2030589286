package summaryhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bazaan/dashboarddev/internal/service"
	"github.com/bazaan/dashboarddev/pkg/dto"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

type SummaryService interface {
	Overview(callerID, callerRole string) (*service.Overview, error)
}

type SummaryHandler struct {
	srv SummaryService
}

func New(srv SummaryService) *SummaryHandler {
	return &SummaryHandler{
		srv: srv,
	}
}

func (h *SummaryHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")

	overview, err := h.srv.Overview(userID, role)
	if err != nil {
		logger.Log.Error("error while building summary", logger.String("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.Overview{
		Summary: dto.Summary{
			WeeklyTasks:     overview.Summary.WeeklyTasks,
			TotalTasks:      overview.Summary.TotalTasks,
			CompletedTasks:  overview.Summary.CompletedTasks,
			InProgressTasks: overview.Summary.InProgressTasks,
			StarsBalance:    overview.Summary.StarsBalance,
			BonusesBalance:  overview.Summary.BonusesBalance,
		},
		Briefings:     make([]dto.Event, len(overview.Briefings)),
		Notifications: make([]dto.Notification, len(overview.Notifications)),
	}

	for i, event := range overview.Briefings {
		resp.Briefings[i] = dto.Event{
			ID:        event.ID,
			Title:     event.Title,
			Type:      event.Type,
			StartDate: event.StartDate.Format(time.RFC3339),
			EndDate:   event.EndDate.Format(time.RFC3339),
			Progress:  event.Progress,
			CreatedAt: event.CreatedAt.Format(time.RFC3339),
		}
	}

	for i, notification := range overview.Notifications {
		resp.Notifications[i] = dto.Notification{
			ID:        notification.ID,
			Title:     notification.Title,
			Body:      notification.Body,
			Level:     notification.Level,
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("error while encoding summary to JSON", logger.Error(err))
	}
}
