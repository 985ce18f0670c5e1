package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoBaladas/Facturacion/internal/domain/billing"
	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
)

func producto(id, codigo string, precio string) *entity.Producto {
	return &entity.Producto{
		ID:     id,
		Codigo: codigo,
		Nombre: "Producto " + codigo,
		Precio: decimal.RequireFromString(precio),
	}
}

// Sin IVA: precio 100.00, cantidad 2 → subtotal 200, iva 0, total 200.
func TestCalcular_SinIVA(t *testing.T) {
	catalogo := []*entity.Producto{producto("p1", "A01", "100.00")}
	items := []entity.FacturaItem{{ProductoID: "p1", Cantidad: 2}}

	tot := billing.Calcular(items, catalogo, false)

	assert.Equal(t, "200.00", tot.Subtotal.StringFixed(2))
	assert.True(t, tot.IVA.IsZero(), "sin IVA el impuesto debe ser cero")
	assert.Equal(t, "200.00", tot.Total.StringFixed(2))
}

// Con IVA: precio 100.00, cantidad 1 → unitario 122, subtotal 122,
// iva 22 (122 × 0.22 / 1.22), total 122. El subtotal ya incluye el
// impuesto y el total no lo vuelve a sumar.
func TestCalcular_ConIVA(t *testing.T) {
	catalogo := []*entity.Producto{producto("p1", "A01", "100.00")}
	items := []entity.FacturaItem{{ProductoID: "p1", Cantidad: 1}}

	tot := billing.Calcular(items, catalogo, true)

	assert.Equal(t, "122.00", tot.Subtotal.StringFixed(2))
	assert.Equal(t, "22.00", tot.IVA.StringFixed(2))
	assert.Equal(t, "122.00", tot.Total.StringFixed(2))
}

// Invariantes: total == subtotal siempre, iva == subtotal×0.22/1.22 con IVA.
func TestCalcular_Invariantes(t *testing.T) {
	catalogo := []*entity.Producto{
		producto("p1", "A01", "19.99"),
		producto("p2", "B02", "0.01"),
		producto("p3", "C03", "1234.56"),
	}
	items := []entity.FacturaItem{
		{ProductoID: "p1", Cantidad: 3},
		{ProductoID: "p2", Cantidad: 100},
		{ProductoID: "p3", Cantidad: 1},
	}

	for _, aplicarIVA := range []bool{false, true} {
		tot := billing.Calcular(items, catalogo, aplicarIVA)

		assert.True(t, tot.Total.Equal(tot.Subtotal),
			"total debe ser igual al subtotal (aplicarIVA=%v)", aplicarIVA)

		esperado := decimal.Zero
		if aplicarIVA {
			esperado = tot.Subtotal.Mul(billing.TasaIVA).Div(decimal.NewFromInt(1).Add(billing.TasaIVA))
		}
		assert.True(t, tot.IVA.Equal(esperado),
			"iva=%s esperado=%s (aplicarIVA=%v)", tot.IVA, esperado, aplicarIVA)
	}
}

// Las líneas con producto no resoluble se omiten en silencio.
func TestCalcular_ProductoNoResoluble(t *testing.T) {
	catalogo := []*entity.Producto{producto("p1", "A01", "50.00")}
	items := []entity.FacturaItem{
		{ProductoID: "p1", Cantidad: 1},
		{ProductoID: "eliminado", Cantidad: 99},
	}

	tot := billing.Calcular(items, catalogo, false)
	assert.Equal(t, "50.00", tot.Subtotal.StringFixed(2))
}

// Sin líneas resolubles el resultado es cero en todo.
func TestCalcular_SinLineas(t *testing.T) {
	tot := billing.Calcular(nil, nil, true)
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.IVA.IsZero())
	assert.True(t, tot.Total.IsZero())
}

// El cálculo es puro: no muta el catálogo ni las líneas.
func TestCalcular_NoMuta(t *testing.T) {
	catalogo := []*entity.Producto{producto("p1", "A01", "10.00")}
	items := []entity.FacturaItem{{ProductoID: "p1", Cantidad: 2}}

	antes := catalogo[0].Precio.String()
	_ = billing.Calcular(items, catalogo, true)

	require.Equal(t, antes, catalogo[0].Precio.String())
	require.Equal(t, 2, items[0].Cantidad)
}

func TestPrecioUnitario(t *testing.T) {
	precio := decimal.RequireFromString("100.00")

	assert.Equal(t, "100.00", billing.PrecioUnitario(precio, false).StringFixed(2))
	assert.Equal(t, "122.00", billing.PrecioUnitario(precio, true).StringFixed(2))
}
