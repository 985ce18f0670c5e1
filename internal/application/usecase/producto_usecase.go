package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/DiegoBaladas/Facturacion/internal/application/dto"
	"github.com/DiegoBaladas/Facturacion/internal/domain"
	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD + backup para productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Crear crea un producto nuevo. Rechaza código vacío, nombre vacío,
// precio negativo y código ya usado por otro producto.
func (uc *ProductoUseCase) Crear(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	producto := &entity.Producto{
		ID:     uuid.New().String(),
		Codigo: in.Codigo,
		Nombre: in.Nombre,
		Precio: in.Precio,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Obtener devuelve un producto por ID, o nil si no existe.
func (uc *ProductoUseCase) Obtener(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Listar lista productos, con filtro de texto opcional sobre código y nombre.
func (uc *ProductoUseCase) Listar(q string) ([]*dto.ProductoResponse, error) {
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// Actualizar aplica un merge parcial. El código puede cambiar mientras no
// choque con el de otro producto; conservar el propio código es válido.
func (uc *ProductoUseCase) Actualizar(id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Codigo != nil {
		if *in.Codigo == "" {
			return nil, domain.ErrInvalidInput
		}
		otro, err := uc.repo.GetByCodigo(*in.Codigo)
		if err != nil {
			return nil, err
		}
		if otro != nil && otro.ID != id {
			return nil, domain.ErrDuplicate
		}
		producto.Codigo = *in.Codigo
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = *in.Nombre
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Eliminar borra el producto. Las facturas que lo referencian quedan con
// la referencia colgando; el renderizado omite esas líneas.
func (uc *ProductoUseCase) Eliminar(id string) error {
	return uc.repo.Delete(id)
}

// ExportarBackup devuelve el catálogo completo en el formato de backup
// (precio como número JSON, re-importable tal cual).
func (uc *ProductoUseCase) ExportarBackup() ([]dto.ProductoBackup, error) {
	list, err := uc.repo.List("")
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoBackup, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductoBackup{
			Codigo: p.Codigo,
			Nombre: p.Nombre,
			Precio: p.Precio.InexactFloat64(),
		})
	}
	return out, nil
}

// ImportarBackup valida el payload completo y, solo si cada elemento es
// válido (codigo string no vacío, nombre string no vacío, precio numérico),
// reemplaza la colección entera. Un solo elemento inválido rechaza todo;
// la colección queda intacta. No hay merge ni deduplicación de códigos.
func (uc *ProductoUseCase) ImportarBackup(payload []byte) (int, error) {
	var crudos []map[string]any
	if err := json.Unmarshal(payload, &crudos); err != nil {
		return 0, fmt.Errorf("%w: el archivo debe contener un arreglo JSON de productos", domain.ErrInvalidInput)
	}

	productos := make([]*entity.Producto, 0, len(crudos))
	for i, crudo := range crudos {
		codigo, ok := crudo["codigo"].(string)
		if !ok || codigo == "" {
			return 0, fmt.Errorf("%w: elemento %d sin codigo válido", domain.ErrInvalidInput, i)
		}
		nombre, ok := crudo["nombre"].(string)
		if !ok || nombre == "" {
			return 0, fmt.Errorf("%w: elemento %d sin nombre válido", domain.ErrInvalidInput, i)
		}
		precio, ok := crudo["precio"].(float64)
		if !ok {
			return 0, fmt.Errorf("%w: elemento %d con precio no numérico", domain.ErrInvalidInput, i)
		}
		productos = append(productos, &entity.Producto{
			ID:     uuid.New().String(),
			Codigo: codigo,
			Nombre: nombre,
			Precio: decimal.NewFromFloat(precio),
		})
	}

	if err := uc.repo.ReplaceAll(productos); err != nil {
		return 0, err
	}
	return len(productos), nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:     p.ID,
		Codigo: p.Codigo,
		Nombre: p.Nombre,
		Precio: p.Precio,
	}
}
