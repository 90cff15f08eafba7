package routers

import (
	"arena-scheduler-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachArenaRoutes(router chi.Router, arenaController *controllers.ArenaController) {
	router.Get("/", arenaController.FindAll)
	router.Get("/{id}", arenaController.FindByID)
	router.Get("/{id}/slots", arenaController.GenerateSlots)
}
