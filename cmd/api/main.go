package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appbilling "github.com/DiegoBaladas/Facturacion/internal/application/billing"
	"github.com/DiegoBaladas/Facturacion/internal/application/usecase"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
	"github.com/DiegoBaladas/Facturacion/internal/infrastructure/collection"
	infrapdf "github.com/DiegoBaladas/Facturacion/internal/infrastructure/pdf"
	"github.com/DiegoBaladas/Facturacion/internal/infrastructure/postgres"
	httpRouter "github.com/DiegoBaladas/Facturacion/internal/interfaces/http"
	"github.com/DiegoBaladas/Facturacion/internal/storage/file"
	"github.com/DiegoBaladas/Facturacion/pkg/config"
	"github.com/DiegoBaladas/Facturacion/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		productoRepo repository.ProductoRepository
		clienteRepo  repository.ClienteRepository
		facturaRepo  repository.FacturaRepository
	)
	switch cfg.Store.Backend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("creación de esquema")
		}
		productoRepo = postgres.NewProductoRepository(pool)
		clienteRepo = postgres.NewClienteRepository(pool)
		facturaRepo = postgres.NewFacturaRepository(pool)
	default:
		store, err := file.New(cfg.Store.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Store.DataDir).Msg("directorio de datos")
		}
		productoRepo = collection.NewProductoRepository(store)
		clienteRepo = collection.NewClienteRepository(store)
		facturaRepo = collection.NewFacturaRepository(store)
	}

	productoUC := usecase.NewProductoUseCase(productoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	facturaUC := appbilling.NewFacturaUseCase(facturaRepo, clienteRepo, productoRepo)

	negocio := appbilling.Negocio{
		Nombre:    cfg.Negocio.Nombre,
		Direccion: cfg.Negocio.Direccion,
		Telefono:  cfg.Negocio.Telefono,
		Email:     cfg.Negocio.Email,
	}
	documentoUC := appbilling.NewDocumentoUseCase(facturaRepo, clienteRepo, productoRepo, negocio)
	pdfUC := appbilling.NewPDFUseCase(documentoUC, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:  productoUC,
		ClienteUC:   clienteUC,
		FacturaUC:   facturaUC,
		DocumentoUC: documentoUC,
		PDFUC:       pdfUC,
	})

	// Apagado ordenado con SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando servidor")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := cfg.HTTP.Addr()
	log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
	log.Info().Msg("servidor detenido")
}
