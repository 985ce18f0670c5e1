package collection

import (
	"strings"

	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
	"github.com/DiegoBaladas/Facturacion/internal/storage"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementa ClienteRepository sobre la colección "clientes".
type ClienteRepo struct {
	col *coleccion[entity.Cliente]
}

// NewClienteRepository construye el adaptador.
func NewClienteRepository(store storage.Store) *ClienteRepo {
	return &ClienteRepo{col: newColeccion[entity.Cliente](store, storage.ColClientes)}
}

func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	return r.col.modificar(func(list []entity.Cliente) ([]entity.Cliente, error) {
		return append(list, *cliente), nil
	})
}

func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	list, err := r.col.leer()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			c := list[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ClienteRepo) List(q string) ([]*entity.Cliente, error) {
	list, err := r.col.leer()
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(q)
	out := make([]*entity.Cliente, 0, len(list))
	for i := range list {
		if q != "" && !strings.Contains(strings.ToLower(list[i].Nombre), q) {
			continue
		}
		c := list[i]
		out = append(out, &c)
	}
	return out, nil
}

func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	return r.col.modificar(func(list []entity.Cliente) ([]entity.Cliente, error) {
		for i := range list {
			if list[i].ID == cliente.ID {
				list[i] = *cliente
				break
			}
		}
		return list, nil
	})
}

func (r *ClienteRepo) Delete(id string) error {
	return r.col.modificar(func(list []entity.Cliente) ([]entity.Cliente, error) {
		out := list[:0]
		for i := range list {
			if list[i].ID != id {
				out = append(out, list[i])
			}
		}
		return out, nil
	})
}
