// Package http expone la API REST con Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DiegoBaladas/Facturacion/internal/application/billing"
	"github.com/DiegoBaladas/Facturacion/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC  *usecase.ProductoUseCase
	ClienteUC   *usecase.ClienteUseCase
	FacturaUC   *billing.FacturaUseCase
	DocumentoUC *billing.DocumentoUseCase
	PDFUC       *billing.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	// /backup antes que /:id para que el path fijo no capture como parámetro
	productos.Get("/backup", productoHandler.ExportarBackup)
	productos.Post("/backup", productoHandler.ImportarBackup)
	productos.Post("/", productoHandler.Crear)
	productos.Get("/", productoHandler.Listar)
	productos.Get("/:id", productoHandler.Obtener)
	productos.Put("/:id", productoHandler.Actualizar)
	productos.Delete("/:id", productoHandler.Eliminar)

	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Crear)
	clientes.Get("/", clienteHandler.Listar)
	clientes.Get("/:id", clienteHandler.Obtener)
	clientes.Put("/:id", clienteHandler.Actualizar)
	clientes.Delete("/:id", clienteHandler.Eliminar)

	facturas := api.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.FacturaUC, deps.DocumentoUC, deps.PDFUC)
	facturas.Post("/", facturaHandler.Guardar)
	facturas.Get("/", facturaHandler.Listar)
	facturas.Get("/:id", facturaHandler.Obtener)
	facturas.Delete("/:id", facturaHandler.Eliminar)
	facturas.Get("/:id/documento", facturaHandler.Documento)
	facturas.Get("/:id/pdf", facturaHandler.PDF)
}
