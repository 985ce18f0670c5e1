package dto

import "github.com/shopspring/decimal"

// GuardarFacturaRequest body para POST /api/facturas. Si trae ID es una
// re-edición: el registro se reemplaza bajo el mismo identificador y los
// totales se recalculan contra los precios vigentes del catálogo.
type GuardarFacturaRequest struct {
	ID         string               `json:"id,omitempty"`
	ClienteID  string               `json:"clienteId"`
	Items      []FacturaItemRequest `json:"items"`
	AplicarIVA bool                 `json:"aplicarIVA"`
}

// FacturaItemRequest línea del borrador de factura.
type FacturaItemRequest struct {
	ProductoID string `json:"productoId"`
	Cantidad   int    `json:"cantidad"`
}

// FacturaResponse factura persistida en respuestas.
type FacturaResponse struct {
	ID            string               `json:"id"`
	ClienteID     string               `json:"clienteId"`
	ClienteNombre string               `json:"clienteNombre,omitempty"`
	Items         []FacturaItemRequest `json:"items"`
	Fecha         string               `json:"fecha"` // RFC 3339
	Subtotal      decimal.Decimal      `json:"subtotal"`
	IVA           decimal.Decimal      `json:"iva"`
	Total         decimal.Decimal      `json:"total"`
	AplicarIVA    bool                 `json:"aplicarIVA"`
}
