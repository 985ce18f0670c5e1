package usecase

import (
	"github.com/google/uuid"

	"github.com/DiegoBaladas/Facturacion/internal/application/dto"
	"github.com/DiegoBaladas/Facturacion/internal/domain"
	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Crear crea un cliente nuevo. Nombre, email y teléfono son obligatorios.
func (uc *ClienteUseCase) Crear(in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || in.Email == "" || in.Telefono == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente := &entity.Cliente{
		ID:       uuid.New().String(),
		Nombre:   in.Nombre,
		Email:    in.Email,
		Telefono: in.Telefono,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Obtener devuelve un cliente por ID, o nil si no existe.
func (uc *ClienteUseCase) Obtener(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// Listar lista clientes, con filtro de texto opcional sobre el nombre.
func (uc *ClienteUseCase) Listar(q string) ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Actualizar aplica un merge parcial; los campos presentes no pueden
// quedar vacíos.
func (uc *ClienteUseCase) Actualizar(id string, in dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Nombre = *in.Nombre
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Email = *in.Email
	}
	if in.Telefono != nil {
		if *in.Telefono == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Telefono = *in.Telefono
	}
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Eliminar borra el cliente. Las facturas que lo referencian quedan con
// la referencia colgando; el documento se renderiza con nombre en blanco.
func (uc *ClienteUseCase) Eliminar(id string) error {
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nombre:   c.Nombre,
		Email:    c.Email,
		Telefono: c.Telefono,
	}
}
