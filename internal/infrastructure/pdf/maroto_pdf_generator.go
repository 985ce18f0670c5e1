// Package pdf implementa la exportación de facturas a PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio (dirección/tel/email)  │  Factura N° + Fecha│
//	│  ─────────────────────────────────────────────────────────  │
//	│  Cliente + IVA aplicado                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Nombre | Cantidad | Precio Unit. | Subtotal│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA (22%) / Total                      │
//	│  FOOTER: leyenda fija                                       │
//	└─────────────────────────────────────────────────────────────┘
//
// Las filas de la tabla avanzan a una página nueva cuando el contenido
// supera el alto de página; Maroto maneja el corte.
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/DiegoBaladas/Facturacion/internal/application/billing"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa billing.GeneradorPDF usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generar renderiza el documento y devuelve los bytes del PDF.
func (g *MarotoPDFGenerator) Generar(_ context.Context, d *appbilling.Documento) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+d.FacturaID, true).
		WithAuthor(d.Negocio.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(d.Filas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRow(d))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(pieRows(d.Pie)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: identidad del negocio (izq) y N° de factura + fecha (der).
func headerRow(d *appbilling.Documento) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(d.Negocio.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(d.Negocio.Direccion, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s", d.Negocio.Telefono, d.Negocio.Email),
				props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("N°: "+d.FacturaID, props.Text{Size: 7, Align: align.Right, Top: 9}),
			text.New("Fecha: "+d.Fecha.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: nombre del cliente (vacío si la referencia cuelga) y si la
// factura lleva IVA.
func clienteRow(d *appbilling.Documento) core.Row {
	iva := "No"
	if d.AplicarIVA {
		iva = "Sí"
	}
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Cliente: "+d.Cliente, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
		),
		col.New(4).Add(
			text.New("IVA aplicado: "+iva, props.Text{Size: 9, Align: align.Right, Top: 2}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Cantidad", 2, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableRows: una fila por línea resoluble del documento.
func tableRows(filas []appbilling.FilaDocumento) []core.Row {
	result := make([]core.Row, 0, len(filas))
	for _, f := range filas {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(f.Codigo, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(4).Add(text.New(f.Nombre, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(f.Cantidad), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(money(f.PrecioUnitario), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money(f.Subtotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalesRow: bloque de totales alineado a la derecha.
func totalesRow(d *appbilling.Documento) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(24).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:"),
			label("IVA (22%):"),
			text.New("Total:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2, Top: 14,
			}),
		),
		col.New(3).Add(
			text.New(money(d.Subtotal), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(money(d.IVA), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 7}),
			text.New(money(d.Total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 1, Top: 14,
			}),
		),
	)
}

// pieRows: leyenda fija centrada al pie.
func pieRows(lineas []string) []core.Row {
	rows := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// money formatea un monto a 2 decimales para presentación.
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
