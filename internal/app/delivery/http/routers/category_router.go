package routers

import (
	"arena-scheduler-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCategoryRoutes(router chi.Router, categoryController *controllers.CategoryController) {
	router.Get("/", categoryController.FindAll)
	router.Get("/{id}", categoryController.FindByID)
}
