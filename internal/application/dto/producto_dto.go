package dto

import "github.com/shopspring/decimal"

// CrearProductoRequest body para POST /api/productos.
type CrearProductoRequest struct {
	Codigo string          `json:"codigo"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

// ActualizarProductoRequest body para PUT /api/productos/:id.
// Los campos nil no se tocan (merge parcial).
type ActualizarProductoRequest struct {
	Codigo *string          `json:"codigo"`
	Nombre *string          `json:"nombre"`
	Precio *decimal.Decimal `json:"precio"`
}

// ProductoResponse producto en respuestas.
type ProductoResponse struct {
	ID     string          `json:"id"`
	Codigo string          `json:"codigo"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

// ProductoBackup registro del archivo de backup. Precio es float64 a
// propósito: el formato de intercambio usa números JSON, y la validación
// de importación exige exactamente ese tipo.
type ProductoBackup struct {
	Codigo string  `json:"codigo"`
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
}
