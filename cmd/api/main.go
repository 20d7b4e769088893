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
	"github.com/jhoicas/cervejaria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/cervejaria-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/cervejaria-api/internal/interfaces/http"
	"github.com/jhoicas/cervejaria-api/pkg/config"
	"github.com/jhoicas/cervejaria-api/pkg/logger"
	"github.com/jhoicas/cervejaria-api/pkg/tracing"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	// W3C trace context: los logs de acceso llevan trace_id/span_id de la petición.
	tracerProvider := tracing.Setup(tracing.Config{
		ServiceName: cfg.App.Name,
		SampleRatio: cfg.Trace.SampleRatio,
	})

	ctx := context.Background()
	beerRepo, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("conexión al almacenamiento")
	}
	defer closeStore()

	// PDF: reporte de stock con una fila por cerveza
	reportGenerator := infrapdf.NewStockReportGenerator()
	beerUC := usecase.NewBeerUseCase(beerRepo, reportGenerator)

	metrics := httpRouter.NewMetrics("cervejaria")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.Observability(log.With().Str("component", "http").Logger(), metrics))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cervejaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BeerUC:  beerUC,
		Metrics: metrics,
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
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("apagado del tracer")
	}

	log.Info().Msg("aplicación detenida")
}
