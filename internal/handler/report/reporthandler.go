package reporthandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/dto"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

type ReportService interface {
	Create(report domain.Report) (*domain.Report, error)
	Reports(callerID, callerRole string) ([]domain.Report, error)
}

type ReportHandler struct {
	srv ReportService
}

func New(srv ReportService) *ReportHandler {
	return &ReportHandler{
		srv: srv,
	}
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID := r.Header.Get("User-ID")

	var req dto.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("error while decoding a report request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := req.IsValid(); err != nil {
		logger.Log.Warn("invalid report fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.srv.Create(domain.Report{
		Title:    req.Title,
		Body:     req.Body,
		Type:     req.Type,
		AuthorID: authorID,
	})
	if err != nil {
		logger.Log.Error("error while creating report", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(toDTO(*created)); err != nil {
		logger.Log.Error("error while encoding report to JSON", logger.Error(err))
	}
}

func (h *ReportHandler) Reports(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("User-ID")
	role := r.Header.Get("User-Role")

	reports, err := h.srv.Reports(userID, role)
	if err != nil {
		logger.Log.Error("error while fetching reports", logger.String("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	dtos := make([]dto.Report, len(reports))
	for i, report := range reports {
		dtos[i] = toDTO(report)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(dtos); err != nil {
		logger.Log.Error("error while encoding reports to JSON", logger.Error(err))
	}
}

func toDTO(report domain.Report) dto.Report {
	return dto.Report{
		ID:         report.ID,
		Title:      report.Title,
		Body:       report.Body,
		Type:       report.Type,
		AuthorID:   report.AuthorID,
		AuthorName: report.AuthorName,
		CreatedAt:  report.CreatedAt.Format(time.RFC3339),
	}
}
