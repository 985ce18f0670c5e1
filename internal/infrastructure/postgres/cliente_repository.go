package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	pool *pgxpool.Pool
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(pool *pgxpool.Pool) *ClienteRepo {
	return &ClienteRepo{pool: pool}
}

func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO clientes (id, nombre, email, telefono) VALUES ($1, $2, $3, $4)`,
		cliente.ID, cliente.Nombre, cliente.Email, cliente.Telefono,
	)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, nombre, email, telefono FROM clientes WHERE id = $1`, id).
		Scan(&c.ID, &c.Nombre, &c.Email, &c.Telefono)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepo) List(q string) ([]*entity.Cliente, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, nombre, email, telefono FROM clientes
		 WHERE $1 = '' OR nombre ILIKE '%' || $1 || '%'
		 ORDER BY pos`, q)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Email, &c.Telefono); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE clientes SET nombre = $2, email = $3, telefono = $4 WHERE id = $1`,
		cliente.ID, cliente.Nombre, cliente.Email, cliente.Telefono,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
