package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/labstock-api/internal/application/analytics"
	"github.com/jhoicas/labstock-api/internal/application/inventory"
	"github.com/jhoicas/labstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ComponentUC   *usecase.ComponentUseCase
	ApplyMovement *inventory.ApplyMovementUseCase
	History       *inventory.HistoryUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Todas las rutas requieren Bearer Token;
// crear componentes y auditar balances requiere además la bandera de admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	components := api.Group("/components")
	componentHandler := NewComponentHandler(deps.ComponentUC)
	components.Post("/", RequireAdmin(), componentHandler.Create)
	components.Get("/", componentHandler.List)
	components.Get("/:id", componentHandler.GetByID)
	components.Put("/:id", componentHandler.Update)

	inventoryHandler := NewInventoryHandler(deps.ApplyMovement, deps.History)
	components.Post("/:id/movements", inventoryHandler.ApplyMovement)
	components.Get("/:id/movements", inventoryHandler.ListMovements)
	components.Get("/:id/audit", RequireAdmin(), inventoryHandler.AuditBalance)

	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
