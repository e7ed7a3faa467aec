package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leo-ar/pickit-api/internal/application/pickit"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	GenerateUC *pickit.GenerateUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	pickitGroup := api.Group("/pickit")
	pickitHandler := NewPickitHandler(deps.GenerateUC)
	pickitGroup.Post("/generate", pickitHandler.Generate)
}
