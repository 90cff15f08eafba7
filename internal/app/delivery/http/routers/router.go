package routers

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/delivery/http/controllers"
	"arena-scheduler-service/internal/app/delivery/http/middlewares"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Arena     *controllers.ArenaController
	Category  *controllers.CategoryController
	Timesheet *controllers.TimesheetController
	Slot      *controllers.SlotController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	readLimiter, writeLimiter := middlewares.CreateRateLimiters()
	router.Use(readLimiter)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/arenas", func(r chi.Router) {
				attachArenaRoutes(r, ctrls.Arena)
			})

			r.Route("/categories", func(r chi.Router) {
				attachCategoryRoutes(r, ctrls.Category)
			})

			r.Route("/timesheets", func(r chi.Router) {
				attachTimesheetRoutes(r, middlewares, writeLimiter, ctrls.Timesheet)
			})

			r.Route("/slots", func(r chi.Router) {
				attachSlotRoutes(r, ctrls.Slot)
			})

			r.Get("/weeks", ctrls.Slot.WeekRange)
		})
	})
}
