package sessionhandler

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/dto"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

type SessionService interface {
	Start(userID string) (*domain.WorkSession, error)
	BreakStart(userID string) (*domain.WorkSession, error)
	BreakEnd(userID string) (*domain.WorkSession, error)
	End(userID string) (*domain.WorkSession, error)
	Sessions(callerID, callerRole string) ([]domain.WorkSession, error)
	SessionsForExport(callerID, callerRole string) ([]domain.WorkSession, error)
}

type SessionHandler struct {
	srv SessionService
}

func New(srv SessionService) *SessionHandler {
	return &SessionHandler{
		srv: srv,
	}
}

func (h *SessionHandler) Action(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("User-ID")

	var action dto.SessionActionRequest
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		logger.Log.Warn("error while decoding a session action request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := action.IsValid(); err != nil {
		logger.Log.Warn("invalid session action", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var session *domain.WorkSession
	var err error
	switch action.Action {
	case dto.SessionActionStart:
		session, err = h.srv.Start(userID)
	case dto.SessionActionBreakStart:
		session, err = h.srv.BreakStart(userID)
	case dto.SessionActionBreakEnd:
		session, err = h.srv.BreakEnd(userID)
	case dto.SessionActionEnd:
		session, err = h.srv.End(userID)
	}

	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			http.Error(w, "no active session", http.StatusBadRequest)
			return
		}
		logger.Log.Error("error while applying session action",
			logger.String("action", action.Action), logger.String("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(toDTO(*session, time.Now())); err != nil {
		logger.Log.Error("error while encoding session to JSON", logger.Error(err))
	}
}

func (h *SessionHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")

	sessions, err := h.srv.Sessions(userID, role)
	if err != nil {
		logger.Log.Error("error while fetching sessions", logger.String("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	now := time.Now()
	dtos := make([]dto.Session, len(sessions))
	for i, session := range sessions {
		dtos[i] = toDTO(session, now)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(dtos); err != nil {
		logger.Log.Error("error while encoding sessions to JSON", logger.Error(err))
	}
}

func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")

	sessions, err := h.srv.SessionsForExport(userID, role)
	if err != nil {
		logger.Log.Error("error while fetching sessions for export", logger.String("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="work-sessions.csv"`)

	now := time.Now()
	writer := csv.NewWriter(w)
	record := []string{"User", "Email", "Status", "Started", "Break start", "Break end", "Ended", "Elapsed seconds"}
	if err = writer.Write(record); err != nil {
		logger.Log.Error("error while writing CSV header", logger.Error(err))
		return
	}

	for _, session := range sessions {
		record = []string{
			session.UserName,
			session.UserEmail,
			session.Status,
			session.StartedAt.Format(time.RFC3339),
			formatOptional(session.BreakStart),
			formatOptional(session.BreakEnd),
			formatOptional(session.EndedAt),
			strconv.FormatInt(int64(session.Elapsed(now).Seconds()), 10),
		}
		if err = writer.Write(record); err != nil {
			logger.Log.Error("error while writing CSV record", logger.Error(err))
			return
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		logger.Log.Error("error while flushing CSV", logger.Error(err))
	}
}

func toDTO(session domain.WorkSession, now time.Time) dto.Session {
	return dto.Session{
		ID:             session.ID,
		UserID:         session.UserID,
		UserName:       session.UserName,
		UserEmail:      session.UserEmail,
		Status:         session.Status,
		StartedAt:      session.StartedAt.Format(time.RFC3339),
		BreakStart:     formatOptionalPtr(session.BreakStart),
		BreakEnd:       formatOptionalPtr(session.BreakEnd),
		EndedAt:        formatOptionalPtr(session.EndedAt),
		ElapsedSeconds: int64(session.Elapsed(now).Seconds()),
	}
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(time.RFC3339)
}

func formatOptionalPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(time.RFC3339)

	return &formatted
}
