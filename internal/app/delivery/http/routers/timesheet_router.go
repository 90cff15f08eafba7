package routers

import (
	"arena-scheduler-service/internal/app/delivery/http/controllers"
	"arena-scheduler-service/internal/app/delivery/http/middlewares"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachTimesheetRoutes(router chi.Router, middlewares *middlewares.Middlewares, writeLimiter func(http.Handler) http.Handler, timesheetController *controllers.TimesheetController) {
	router.Get("/", timesheetController.FindByRange)
	router.Get("/{id}", timesheetController.FindByID)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAPIKey)
		r.Use(writeLimiter)

		r.Post("/category", timesheetController.UpsertCategory)
		r.Post("/comment", timesheetController.UpsertComment)
		r.Post("/copy-range", timesheetController.CopyRange)
		r.Post("/copy-week", timesheetController.CopyWeek)
		r.Post("/export", timesheetController.ExportWeek)
	})
}
