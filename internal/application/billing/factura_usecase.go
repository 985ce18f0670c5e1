// Package billing contiene los casos de uso de facturación: armado de la
// factura a partir del borrador, proyección a documento imprimible y
// exportación a PDF.
package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/DiegoBaladas/Facturacion/internal/application/dto"
	"github.com/DiegoBaladas/Facturacion/internal/domain"
	domainbilling "github.com/DiegoBaladas/Facturacion/internal/domain/billing"
	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
)

// FacturaUseCase arma y persiste facturas a partir de borradores.
type FacturaUseCase struct {
	facturaRepo  repository.FacturaRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(
	facturaRepo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
) *FacturaUseCase {
	return &FacturaUseCase{
		facturaRepo:  facturaRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
	}
}

// Guardar convierte un borrador validado en una factura persistida con
// totales congelados. Valida clienteId no vacío, al menos una línea, y en
// cada línea productoId no vacío y cantidad ≥ 1. No verifica que las
// referencias existan: son referencias débiles y las líneas no resolubles
// simplemente no aportan al total.
//
// Si el borrador trae ID es una re-edición: el registro se reemplaza bajo
// el mismo identificador y los totales se recalculan contra los precios
// vigentes del catálogo (política explícita; ver DESIGN.md). Si el ID no
// existe, devuelve ErrNotFound.
func (uc *FacturaUseCase) Guardar(in dto.GuardarFacturaRequest) (*dto.FacturaResponse, error) {
	if in.ClienteID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.FacturaItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductoID == "" || item.Cantidad < 1 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.FacturaItem{
			ProductoID: item.ProductoID,
			Cantidad:   item.Cantidad,
		})
	}

	catalogo, err := uc.productoRepo.List("")
	if err != nil {
		return nil, err
	}
	totales := domainbilling.Calcular(items, catalogo, in.AplicarIVA)

	factura := &entity.Factura{
		ID:         in.ID,
		ClienteID:  in.ClienteID,
		Items:      items,
		Fecha:      time.Now(),
		Subtotal:   totales.Subtotal,
		IVA:        totales.IVA,
		Total:      totales.Total,
		AplicarIVA: in.AplicarIVA,
	}

	if in.ID == "" {
		factura.ID = uuid.New().String()
		if err := uc.facturaRepo.Create(factura); err != nil {
			return nil, err
		}
	} else {
		existente, err := uc.facturaRepo.GetByID(in.ID)
		if err != nil {
			return nil, err
		}
		if existente == nil {
			return nil, domain.ErrNotFound
		}
		if err := uc.facturaRepo.Update(factura); err != nil {
			return nil, err
		}
	}

	return uc.toResponse(factura), nil
}

// Obtener devuelve una factura por ID, o nil si no existe.
func (uc *FacturaUseCase) Obtener(id string) (*dto.FacturaResponse, error) {
	factura, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, nil
	}
	return uc.toResponse(factura), nil
}

// Listar devuelve el historial de facturas en orden de emisión.
func (uc *FacturaUseCase) Listar() ([]*dto.FacturaResponse, error) {
	list, err := uc.facturaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FacturaResponse, 0, len(list))
	for _, f := range list {
		out = append(out, uc.toResponse(f))
	}
	return out, nil
}

// Eliminar borra la factura; no afecta productos ni clientes.
func (uc *FacturaUseCase) Eliminar(id string) error {
	return uc.facturaRepo.Delete(id)
}

// toResponse resuelve el nombre del cliente al momento de la lectura; una
// referencia colgando deja el nombre vacío, nunca falla.
func (uc *FacturaUseCase) toResponse(f *entity.Factura) *dto.FacturaResponse {
	nombre := ""
	if cliente, err := uc.clienteRepo.GetByID(f.ClienteID); err == nil && cliente != nil {
		nombre = cliente.Nombre
	}
	items := make([]dto.FacturaItemRequest, 0, len(f.Items))
	for _, item := range f.Items {
		items = append(items, dto.FacturaItemRequest{
			ProductoID: item.ProductoID,
			Cantidad:   item.Cantidad,
		})
	}
	return &dto.FacturaResponse{
		ID:            f.ID,
		ClienteID:     f.ClienteID,
		ClienteNombre: nombre,
		Items:         items,
		Fecha:         f.Fecha.Format(time.RFC3339),
		Subtotal:      f.Subtotal,
		IVA:           f.IVA,
		Total:         f.Total,
		AplicarIVA:    f.AplicarIVA,
	}
}
