package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FacturaItem es una línea de factura: referencia débil a un producto
// más la cantidad facturada. No se guarda precio por línea; el precio
// se resuelve contra el catálogo al calcular o al renderizar.
type FacturaItem struct {
	ProductoID string `json:"productoId"`
	Cantidad   int    `json:"cantidad"`
}

// Factura es la cabecera de una factura emitida. Subtotal, IVA y Total
// quedan congelados al momento de la emisión; solo una re-edición los
// recalcula contra los precios vigentes del catálogo.
//
// ClienteID es una referencia débil: puede quedar colgando si el cliente
// se elimina después, y el renderizado lo tolera con nombre en blanco.
type Factura struct {
	ID         string          `json:"id"`
	ClienteID  string          `json:"clienteId"`
	Items      []FacturaItem   `json:"items"`
	Fecha      time.Time       `json:"fecha"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	IVA        decimal.Decimal `json:"iva"`
	Total      decimal.Decimal `json:"total"`
	AplicarIVA bool            `json:"aplicarIVA"`
}
