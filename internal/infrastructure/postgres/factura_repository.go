package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación del puerto FacturaRepository sobre PostgreSQL.
// Las líneas se guardan como JSONB en la misma fila: la factura es un
// documento, no un agregado relacional.
type FacturaRepo struct {
	pool *pgxpool.Pool
}

// NewFacturaRepository construye el adaptador de persistencia para facturas.
func NewFacturaRepository(pool *pgxpool.Pool) *FacturaRepo {
	return &FacturaRepo{pool: pool}
}

func (r *FacturaRepo) Create(factura *entity.Factura) error {
	items, err := json.Marshal(factura.Items)
	if err != nil {
		return fmt.Errorf("serializar items: %w", err)
	}
	_, err = r.pool.Exec(context.Background(),
		`INSERT INTO facturas (id, cliente_id, items, fecha, subtotal, iva, total, aplicar_iva)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		factura.ID, factura.ClienteID, items, factura.Fecha,
		factura.Subtotal, factura.IVA, factura.Total, factura.AplicarIVA,
	)
	if err != nil {
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT id, cliente_id, items, fecha, subtotal, iva, total, aplicar_iva
		 FROM facturas WHERE id = $1`, id)
	f, err := scanFactura(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return f, nil
}

func (r *FacturaRepo) List() ([]*entity.Factura, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, cliente_id, items, fecha, subtotal, iva, total, aplicar_iva
		 FROM facturas ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Factura
	for rows.Next() {
		f, err := scanFactura(rows)
		if err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r *FacturaRepo) Update(factura *entity.Factura) error {
	items, err := json.Marshal(factura.Items)
	if err != nil {
		return fmt.Errorf("serializar items: %w", err)
	}
	_, err = r.pool.Exec(context.Background(),
		`UPDATE facturas SET cliente_id = $2, items = $3, fecha = $4,
		        subtotal = $5, iva = $6, total = $7, aplicar_iva = $8
		 WHERE id = $1`,
		factura.ID, factura.ClienteID, items, factura.Fecha,
		factura.Subtotal, factura.IVA, factura.Total, factura.AplicarIVA,
	)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	return nil
}

func (r *FacturaRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM facturas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	return nil
}

func scanFactura(row pgx.Row) (*entity.Factura, error) {
	var f entity.Factura
	var items []byte
	if err := row.Scan(&f.ID, &f.ClienteID, &items, &f.Fecha,
		&f.Subtotal, &f.IVA, &f.Total, &f.AplicarIVA); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &f.Items); err != nil {
		return nil, fmt.Errorf("deserializar items: %w", err)
	}
	return &f, nil
}
