package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Garancia-api/docs"
	"github.com/jhoicas/Garancia-api/internal/application/certificate"
	"github.com/jhoicas/Garancia-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Garancia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Garancia-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Garancia-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/Garancia-api/internal/interfaces/http"
	"github.com/jhoicas/Garancia-api/pkg/config"
	"github.com/jhoicas/Garancia-api/pkg/logger"
)

// @title        Garancia API
// @version      1.0
// @description  Certificados de garantía en PDF para facturas.
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// ── Almacenes: PostgreSQL si está configurado, memoria si no ─────────────
	var (
		invoices    certificate.InvoiceSource
		settings    certificate.SettingsStore
		attachments interface {
			certificate.AttachmentSink
			certificate.AttachmentReader
		}
	)
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		invoices = postgres.NewInvoiceRepository(pool)
		settings = postgres.NewSettingsRepository(pool, postgres.NewTxRunner(pool))
		attachments = postgres.NewAttachmentRepository(pool)
	} else {
		log.Warn().Msg("sin base de datos configurada: se usan almacenes en memoria")
		invoices = memory.NewInvoiceStore()
		settings = memory.NewSettingsStore()
		attachments = memory.NewAttachmentStore()
	}

	if cfg.Redis.Addr != "" {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, configuración sin caché")
		} else {
			defer client.Close()
			settings = infraredis.NewCachedSettingsStore(settings, client, cfg.Redis.TTL, log.Component("redis"))
		}
	}

	// ── PDF ──────────────────────────────────────────────────────────────────
	composer := infrapdf.NewMarotoCertificateComposer(infrapdf.ComposerOptions{
		LogoPath: cfg.Warranty.LogoPath,
		Contact: infrapdf.ContactInfo{
			CompanyName: cfg.Warranty.CompanyName,
			Address:     cfg.Warranty.Address,
			Phone:       cfg.Warranty.Phone,
			Email:       cfg.Warranty.Email,
			Website:     cfg.Warranty.Website,
		},
		Logger: log.Component("pdf"),
	})

	generateUC := certificate.NewGenerateUseCase(
		invoices, settings, attachments, composer, infrapdf.NewPDFCPUMerger(),
		certificate.WithWorkers(cfg.Warranty.RenderWorkers),
		certificate.WithLogger(log.Component("certificate")),
	)
	settingsUC := certificate.NewSettingsUseCase(settings)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    1 << 20,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Garancia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "logo": composer.HasLogo()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Generate:    generateUC,
		Settings:    settingsUC,
		Attachments: attachments,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
