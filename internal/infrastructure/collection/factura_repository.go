package collection

import (
	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
	"github.com/DiegoBaladas/Facturacion/internal/storage"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementa FacturaRepository sobre la colección "facturas".
type FacturaRepo struct {
	col *coleccion[entity.Factura]
}

// NewFacturaRepository construye el adaptador.
func NewFacturaRepository(store storage.Store) *FacturaRepo {
	return &FacturaRepo{col: newColeccion[entity.Factura](store, storage.ColFacturas)}
}

func (r *FacturaRepo) Create(factura *entity.Factura) error {
	return r.col.modificar(func(list []entity.Factura) ([]entity.Factura, error) {
		return append(list, *factura), nil
	})
}

func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	list, err := r.col.leer()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			f := list[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (r *FacturaRepo) List() ([]*entity.Factura, error) {
	list, err := r.col.leer()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Factura, 0, len(list))
	for i := range list {
		f := list[i]
		out = append(out, &f)
	}
	return out, nil
}

func (r *FacturaRepo) Update(factura *entity.Factura) error {
	return r.col.modificar(func(list []entity.Factura) ([]entity.Factura, error) {
		for i := range list {
			if list[i].ID == factura.ID {
				list[i] = *factura
				break
			}
		}
		return list, nil
	})
}

func (r *FacturaRepo) Delete(id string) error {
	return r.col.modificar(func(list []entity.Factura) ([]entity.Factura, error) {
		out := list[:0]
		for i := range list {
			if list[i].ID != id {
				out = append(out, list[i])
			}
		}
		return out, nil
	})
}
