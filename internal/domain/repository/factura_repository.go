package repository

import "github.com/DiegoBaladas/Facturacion/internal/domain/entity"

// FacturaRepository define el puerto de persistencia para Factura.
// Eliminar una factura no repara referencias en otras colecciones,
// y eliminar productos o clientes no toca las facturas que los citan.
type FacturaRepository interface {
	Create(factura *entity.Factura) error
	GetByID(id string) (*entity.Factura, error)
	List() ([]*entity.Factura, error)
	// Update reemplaza el registro completo conservando el ID.
	Update(factura *entity.Factura) error
	Delete(id string) error
}
