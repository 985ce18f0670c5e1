package repository

import "github.com/DiegoBaladas/Facturacion/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	// GetByCodigo busca por código exacto; nil si no existe.
	GetByCodigo(codigo string) (*entity.Producto, error)
	// List devuelve los productos en orden de inserción. Si q no está vacío,
	// filtra por subcadena (sin distinguir mayúsculas) sobre código y nombre.
	List(q string) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error
	// ReplaceAll reemplaza la colección completa (importación de backup).
	ReplaceAll(productos []*entity.Producto) error
}
