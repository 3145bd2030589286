package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminhandler "github.com/bazaan/dashboarddev/internal/handler/admin"
	eventhandler "github.com/bazaan/dashboarddev/internal/handler/event"
	"github.com/bazaan/dashboarddev/internal/handler/middleware"
	notehandler "github.com/bazaan/dashboarddev/internal/handler/note"
	projecthandler "github.com/bazaan/dashboarddev/internal/handler/project"
	reporthandler "github.com/bazaan/dashboarddev/internal/handler/report"
	sessionhandler "github.com/bazaan/dashboarddev/internal/handler/session"
	starhandler "github.com/bazaan/dashboarddev/internal/handler/star"
	summaryhandler "github.com/bazaan/dashboarddev/internal/handler/summary"
	taskhandler "github.com/bazaan/dashboarddev/internal/handler/task"
	userhandler "github.com/bazaan/dashboarddev/internal/handler/user"
	"github.com/bazaan/dashboarddev/internal/postgres"
	"github.com/bazaan/dashboarddev/internal/service"
)

func (app App) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.WithAuth(app.Config))

	p := postgres.New(app.DB)
	userService := service.NewUserService(p, p, app.Config)
	userHandler := userhandler.New(userService)

	ledgerService := service.NewLedgerService(p, p, p, p)
	adminHandler := adminhandler.New(userService, ledgerService)
	starHandler := starhandler.New(ledgerService)

	taskService := service.NewTaskService(p, p, p)
	taskHandler := taskhandler.New(taskService)

	projectService := service.NewProjectService(p, p)
	projectHandler := projecthandler.New(projectService)

	eventService := service.NewEventService(p)
	eventHandler := eventhandler.New(eventService)

	noteService := service.NewNoteService(p)
	noteHandler := notehandler.New(noteService)

	reportService := service.NewReportService(p)
	reportHandler := reporthandler.New(reportService)

	sessionService := service.NewWorkSessionService(p)
	sessionHandler := sessionhandler.New(sessionService)

	summaryService := service.NewSummaryService(p)
	summaryHandler := summaryhandler.New(summaryService)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", userHandler.Register)
		r.Post("/auth/login", userHandler.Login)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", adminHandler.Users)
			r.Post("/users/approve", adminHandler.Approve)
			r.Post("/stars/award", adminHandler.AwardStars)
		})

		r.Get("/stars/transactions", starHandler.Transactions)

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.Create)
			r.Get("/", taskHandler.Tasks)
			r.Post("/order", taskHandler.Reorder)
			r.Patch("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", projectHandler.Create)
			r.Get("/", projectHandler.Projects)
			r.Post("/order", projectHandler.Reorder)
			r.Put("/{id}", projectHandler.Update)
			r.Delete("/{id}", projectHandler.Delete)
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/", eventHandler.Create)
			r.Get("/", eventHandler.Events)
			r.Put("/{id}", eventHandler.Update)
			r.Delete("/{id}", eventHandler.Delete)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", noteHandler.Create)
			r.Get("/", noteHandler.Notes)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/", reportHandler.Create)
			r.Get("/", reportHandler.Reports)
		})

		r.Route("/work-sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Action)
			r.Get("/", sessionHandler.Sessions)
			r.Get("/export", sessionHandler.Export)
		})

		r.Get("/summary", summaryHandler.Overview)
	})

	return r
}
