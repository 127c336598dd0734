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

	"github.com/jhoicas/billed/internal/application/auth"
	"github.com/jhoicas/billed/internal/application/store"
	infrapdf "github.com/jhoicas/billed/internal/infrastructure/pdf"
	"github.com/jhoicas/billed/internal/infrastructure/postgres"
	"github.com/jhoicas/billed/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/billed/internal/interfaces/http"
	"github.com/jhoicas/billed/pkg/config"
	"github.com/jhoicas/billed/pkg/logger"
)

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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("migración aplicada")
	}

	userRepo := postgres.NewUserRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)

	// Justificantes: bucket GCS si está configurado; si no, PostgreSQL servido en /receipts.
	var receipts store.ReceiptStorage
	routerDeps := httpRouter.RouterDeps{BillRepo: billRepo}
	if cfg.Storage.UseGCS() {
		gcs, err := storage.NewGCSReceiptStorage(ctx, cfg.Storage.GCSBucket, cfg.Storage.PublicBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Cloud Storage")
		}
		defer gcs.Close()
		receipts = gcs
		log.Info().Str("bucket", cfg.Storage.GCSBucket).Msg("justificantes en Cloud Storage")
	} else {
		receipts = storage.NewDatabaseReceiptStorage(receiptRepo)
		routerDeps.ReceiptRepo = receiptRepo
		log.Info().Msg("justificantes en PostgreSQL")
	}

	billStore := store.NewRepositoryStore(billRepo, receipts, log.Component("store"))
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.Storage.MaxUploadBytes + 64*1024,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Billed API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	routerDeps.AuthUC = authUC
	routerDeps.Stores = billStore
	routerDeps.PDF = infrapdf.NewMarotoBillsReport()
	routerDeps.Logger = log.Component("pages")
	routerDeps.SecureCookie = cfg.App.Env == "production"
	httpRouter.Router(app, routerDeps)

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
