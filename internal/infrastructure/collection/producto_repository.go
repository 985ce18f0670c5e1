package collection

import (
	"strings"

	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
	"github.com/DiegoBaladas/Facturacion/internal/storage"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementa ProductoRepository sobre la colección "productos".
type ProductoRepo struct {
	col *coleccion[entity.Producto]
}

// NewProductoRepository construye el adaptador.
func NewProductoRepository(store storage.Store) *ProductoRepo {
	return &ProductoRepo{col: newColeccion[entity.Producto](store, storage.ColProductos)}
}

// Create agrega el producto al final de la colección.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	return r.col.modificar(func(list []entity.Producto) ([]entity.Producto, error) {
		return append(list, *producto), nil
	})
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	list, err := r.col.leer()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			p := list[i]
			return &p, nil
		}
	}
	return nil, nil
}

// GetByCodigo busca por código exacto; nil si no existe.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	list, err := r.col.leer()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Codigo == codigo {
			p := list[i]
			return &p, nil
		}
	}
	return nil, nil
}

// List devuelve los productos en orden de inserción, filtrados por q
// (subcadena sobre código o nombre, sin distinguir mayúsculas).
func (r *ProductoRepo) List(q string) ([]*entity.Producto, error) {
	list, err := r.col.leer()
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(q)
	out := make([]*entity.Producto, 0, len(list))
	for i := range list {
		if q != "" &&
			!strings.Contains(strings.ToLower(list[i].Codigo), q) &&
			!strings.Contains(strings.ToLower(list[i].Nombre), q) {
			continue
		}
		p := list[i]
		out = append(out, &p)
	}
	return out, nil
}

// Update reemplaza el registro con el mismo ID; si no existe, no hace nada.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	return r.col.modificar(func(list []entity.Producto) ([]entity.Producto, error) {
		for i := range list {
			if list[i].ID == producto.ID {
				list[i] = *producto
				break
			}
		}
		return list, nil
	})
}

// Delete elimina por ID; eliminar un producto referenciado por facturas no
// repara esas referencias.
func (r *ProductoRepo) Delete(id string) error {
	return r.col.modificar(func(list []entity.Producto) ([]entity.Producto, error) {
		out := list[:0]
		for i := range list {
			if list[i].ID != id {
				out = append(out, list[i])
			}
		}
		return out, nil
	})
}

// ReplaceAll reemplaza la colección completa (importación de backup).
func (r *ProductoRepo) ReplaceAll(productos []*entity.Producto) error {
	return r.col.modificar(func([]entity.Producto) ([]entity.Producto, error) {
		list := make([]entity.Producto, 0, len(productos))
		for _, p := range productos {
			list = append(list, *p)
		}
		return list, nil
	})
}
