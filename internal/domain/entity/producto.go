package entity

import "github.com/shopspring/decimal"

// Producto representa un artículo del catálogo.
// Codigo es elegido por el usuario y único entre todos los productos.
type Producto struct {
	ID     string          `json:"id"`
	Codigo string          `json:"codigo"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"` // precio de venta, nunca negativo
}
