package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DiegoBaladas/Facturacion/internal/domain"
	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	pool *pgxpool.Pool
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(pool *pgxpool.Pool) *ProductoRepo {
	return &ProductoRepo{pool: pool}
}

func (r *ProductoRepo) Create(producto *entity.Producto) error {
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO productos (id, codigo, nombre, precio) VALUES ($1, $2, $3, $4)`,
		producto.ID, producto.Codigo, producto.Nombre, producto.Precio,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.scanOne(`SELECT id, codigo, nombre, precio FROM productos WHERE id = $1`, id)
}

func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	return r.scanOne(`SELECT id, codigo, nombre, precio FROM productos WHERE codigo = $1`, codigo)
}

func (r *ProductoRepo) scanOne(query string, arg any) (*entity.Producto, error) {
	var p entity.Producto
	err := r.pool.QueryRow(context.Background(), query, arg).
		Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Precio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

func (r *ProductoRepo) List(q string) ([]*entity.Producto, error) {
	query := `
		SELECT id, codigo, nombre, precio FROM productos
		WHERE $1 = '' OR codigo ILIKE '%' || $1 || '%' OR nombre ILIKE '%' || $1 || '%'
		ORDER BY pos`
	rows, err := r.pool.Query(context.Background(), query, q)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Precio); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductoRepo) Update(producto *entity.Producto) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE productos SET codigo = $2, nombre = $3, precio = $4 WHERE id = $1`,
		producto.ID, producto.Codigo, producto.Nombre, producto.Precio,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// ReplaceAll reemplaza la colección completa en una transacción: o entra
// todo el backup o no entra nada.
func (r *ProductoRepo) ReplaceAll(productos []*entity.Producto) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("replace productos: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM productos`); err != nil {
		return fmt.Errorf("replace productos: %w", err)
	}
	for _, p := range productos {
		if _, err := tx.Exec(ctx,
			`INSERT INTO productos (id, codigo, nombre, precio) VALUES ($1, $2, $3, $4)`,
			p.ID, p.Codigo, p.Nombre, p.Precio,
		); err != nil {
			return fmt.Errorf("replace productos: %w", err)
		}
	}
	return tx.Commit(ctx)
}
