package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/almoxarifado-api/internal/application/attachment"
	"github.com/jhoicas/almoxarifado-api/internal/application/inventory"
	"github.com/jhoicas/almoxarifado-api/internal/application/report"
	"github.com/jhoicas/almoxarifado-api/internal/application/usecase"
	"github.com/jhoicas/almoxarifado-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	AttachmentUC     *attachment.UseCase
	ReportUC         *report.UseCase
	UploadLimiter    *rate.Limiter
	// JWTSecret vacío deja la API abierta.
	JWTSecret string
	JWTIssuer string
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Destructivas: solo admin cuando hay autenticación.
	destructive := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
		destructive = RequireRole(jwt.RoleAdmin)
	}

	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Post("/products", productHandler.Create)
	api.Put("/products/:id", productHandler.Update)
	api.Delete("/products/:id", destructive, productHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementQuery)
	api.Get("/movements", inventoryHandler.Movements)
	api.Get("/movements/summary", inventoryHandler.Summary)
	api.Post("/entry", inventoryHandler.Entry)
	api.Post("/exit", inventoryHandler.Exit)

	attachmentHandler := NewAttachmentHandler(deps.AttachmentUC)
	api.Post("/attachments", RateLimit(deps.UploadLimiter), attachmentHandler.Upload)
	api.Get("/attachments", attachmentHandler.List)
	api.Get("/attachments/:id/view", attachmentHandler.View)
	api.Get("/attachments/:id/download", attachmentHandler.Download)
	api.Delete("/attachments/:id", destructive, attachmentHandler.Delete)

	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/movements.pdf", reportHandler.Movements)
	api.Get("/reports/stock.pdf", reportHandler.Stock)
}
