package service

import "github.com/bazaan/dashboarddev/internal/domain"

const reportListLimit = 20

type reportRepository interface {
	CreateReport(report domain.Report) (*domain.Report, error)
	Reports(authorID string, limit int) ([]domain.Report, error)
}

type ReportService struct {
	repo reportRepository
}

func NewReportService(repo reportRepository) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) Create(report domain.Report) (*domain.Report, error) {
	if report.Type == "" {
		report.Type = domain.ReportDaily
	}

	return s.repo.CreateReport(report)
}

// Reports lists every report for admins and the caller's own otherwise.
func (s *ReportService) Reports(callerID, callerRole string) ([]domain.Report, error) {
	if callerRole == domain.RoleAdmin {
		return s.repo.Reports("", reportListLimit)
	}

	return s.repo.Reports(callerID, reportListLimit)
}
