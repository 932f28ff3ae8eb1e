package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Generate    *certificate.GenerateUseCase
	Settings    *certificate.SettingsUseCase
	Attachments certificate.AttachmentReader
	JWTSecret   string
	Log         zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyRole := RequireRole(jwt.RoleAdmin, jwt.RoleOperator)

	// Certificados de garantía
	certHandler := NewCertificateHandler(deps.Generate, deps.Log)
	protected.Post("/invoices/:id/warranty-certificates", anyRole, certHandler.Generate)

	// Descarga de adjuntos
	attHandler := NewAttachmentHandler(deps.Attachments, deps.Log)
	protected.Get("/attachments/:id", anyRole, attHandler.Download)

	// Configuración (solo admin)
	adminOnly := RequireRole(jwt.RoleAdmin)
	settingsHandler := NewSettingsHandler(deps.Settings, deps.Log)
	protected.Get("/warranty/settings", adminOnly, settingsHandler.Get)
	protected.Put("/warranty/settings", adminOnly, settingsHandler.Update)
}
