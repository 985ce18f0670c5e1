package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DiegoBaladas/Facturacion/internal/application/billing"
	"github.com/DiegoBaladas/Facturacion/internal/application/dto"
	"github.com/DiegoBaladas/Facturacion/internal/domain"
)

// FacturaHandler maneja las peticiones HTTP para Factura y sus documentos.
type FacturaHandler struct {
	facturas   *billing.FacturaUseCase
	documentos *billing.DocumentoUseCase
	pdf        *billing.PDFUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(
	facturas *billing.FacturaUseCase,
	documentos *billing.DocumentoUseCase,
	pdf *billing.PDFUseCase,
) *FacturaHandler {
	return &FacturaHandler{facturas: facturas, documentos: documentos, pdf: pdf}
}

// Guardar maneja POST /api/facturas. Sin ID crea una factura nueva; con ID
// reemplaza la existente recalculando totales contra el catálogo vigente.
func (h *FacturaHandler) Guardar(c *fiber.Ctx) error {
	var in dto.GuardarFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.facturas.Guardar(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clienteId, items con productoId y cantidad ≥ 1 son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	status := fiber.StatusCreated
	if in.ID != "" {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(out)
}

// Obtener maneja GET /api/facturas/:id.
func (h *FacturaHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.facturas.Obtener(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(out)
}

// Listar maneja GET /api/facturas (historial en orden de emisión).
func (h *FacturaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.facturas.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Eliminar maneja DELETE /api/facturas/:id.
func (h *FacturaHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.facturas.Eliminar(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Documento maneja GET /api/facturas/:id/documento: la proyección
// imprimible para la vista en pantalla.
func (h *FacturaHandler) Documento(c *fiber.Ctx) error {
	doc, err := h.documentos.Render(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toDocumentoResponse(doc))
}

// PDF maneja GET /api/facturas/:id/pdf: exporta el documento como archivo
// descargable con nombre determinístico.
func (h *FacturaHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.Exportar(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// toDocumentoResponse proyecta el documento a la respuesta de pantalla; el
// redondeo a 2 decimales ocurre recién acá.
func toDocumentoResponse(d *billing.Documento) dto.DocumentoResponse {
	filas := make([]dto.FilaResponse, 0, len(d.Filas))
	for _, f := range d.Filas {
		filas = append(filas, dto.FilaResponse{
			Codigo:         f.Codigo,
			Nombre:         f.Nombre,
			Cantidad:       f.Cantidad,
			PrecioUnitario: f.PrecioUnitario.StringFixed(2),
			Subtotal:       f.Subtotal.StringFixed(2),
		})
	}
	return dto.DocumentoResponse{
		Negocio: dto.NegocioResponse{
			Nombre:    d.Negocio.Nombre,
			Direccion: d.Negocio.Direccion,
			Telefono:  d.Negocio.Telefono,
			Email:     d.Negocio.Email,
		},
		FacturaID:   d.FacturaID,
		Fecha:       d.Fecha.Format(time.RFC3339),
		Cliente:     d.Cliente,
		AplicarIVA:  d.AplicarIVA,
		Filas:       filas,
		Subtotal:    d.Subtotal.StringFixed(2),
		IVA:         d.IVA.StringFixed(2),
		Total:       d.Total.StringFixed(2),
		PieDePagina: d.Pie,
	}
}
