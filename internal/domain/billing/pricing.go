// Package billing contiene el cálculo de totales de factura.
//
// Convención de IVA (22%): cuando la factura lleva IVA, el impuesto se
// incorpora al precio unitario (precio × 1.22) y por lo tanto el subtotal
// ya lo incluye. El campo IVA informa la porción de impuesto contenida en
// ese subtotal (subtotal × 0.22 / 1.22), y el total es igual al subtotal:
// el impuesto no se suma dos veces.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
)

var (
	// TasaIVA es la alícuota fija de IVA aplicada a los precios.
	TasaIVA = decimal.NewFromFloat(0.22)

	factorIVA = decimal.NewFromInt(1).Add(TasaIVA) // 1.22
)

// Totales es el resultado del cálculo de una factura.
type Totales struct {
	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal
}

// PrecioUnitario devuelve el precio de venta de una línea: el precio de
// catálogo, inflado por IVA si la factura lo aplica.
func PrecioUnitario(precio decimal.Decimal, aplicarIVA bool) decimal.Decimal {
	if aplicarIVA {
		return precio.Mul(factorIVA)
	}
	return precio
}

// Calcular computa los totales de una lista de líneas contra un catálogo.
//
// Las líneas cuyo ProductoID no resuelve contra el catálogo no aportan nada
// al resultado; no son un error. La validación de cantidades (≥ 1) es
// responsabilidad del llamador. Función pura: no muta sus argumentos.
func Calcular(items []entity.FacturaItem, catalogo []*entity.Producto, aplicarIVA bool) Totales {
	porID := make(map[string]*entity.Producto, len(catalogo))
	for _, p := range catalogo {
		porID[p.ID] = p
	}

	subtotal := decimal.Zero
	for _, item := range items {
		p, ok := porID[item.ProductoID]
		if !ok {
			continue
		}
		unitario := PrecioUnitario(p.Precio, aplicarIVA)
		subtotal = subtotal.Add(unitario.Mul(decimal.NewFromInt(int64(item.Cantidad))))
	}

	iva := decimal.Zero
	if aplicarIVA {
		// Porción de impuesto contenida en el subtotal (que ya lo incluye).
		iva = subtotal.Mul(TasaIVA).Div(factorIVA)
	}

	return Totales{Subtotal: subtotal, IVA: iva, Total: subtotal}
}
