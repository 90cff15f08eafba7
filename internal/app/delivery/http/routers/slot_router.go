package routers

import (
	"arena-scheduler-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, slotController *controllers.SlotController) {
	router.Get("/encode", slotController.Encode)
	router.Get("/decode/{slot_id}", slotController.Decode)
}
