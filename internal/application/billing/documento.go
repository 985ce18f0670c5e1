package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DiegoBaladas/Facturacion/internal/domain"
	domainbilling "github.com/DiegoBaladas/Facturacion/internal/domain/billing"
	"github.com/DiegoBaladas/Facturacion/internal/domain/entity"
	"github.com/DiegoBaladas/Facturacion/internal/domain/repository"
)

// PieDePagina es la leyenda fija al pie de todo documento de factura.
var PieDePagina = []string{
	"Gracias por su compra",
	"Esta factura no es válida como factura fiscal",
}

// Negocio es la identidad del emisor impresa en el encabezado (estática,
// viene de configuración).
type Negocio struct {
	Nombre    string
	Direccion string
	Telefono  string
	Email     string
}

// Documento es la descripción de layout de una factura renderizada:
// encabezado, metadatos, tabla de líneas, bloque de totales y pie. Tanto la
// vista en pantalla como el PDF exportado se generan desde este valor, así
// ambas salidas comparten la misma selección de filas y la misma regla de
// precios.
type Documento struct {
	Negocio    Negocio
	FacturaID  string
	Fecha      time.Time
	Cliente    string // vacío si la referencia cuelga
	AplicarIVA bool
	Filas      []FilaDocumento
	Subtotal   decimal.Decimal
	IVA        decimal.Decimal
	Total      decimal.Decimal
	Pie        []string
}

// FilaDocumento es una línea de la tabla: datos del producto resueltos
// contra el catálogo vigente, con el precio unitario ya inflado por IVA
// cuando la factura lo aplica.
type FilaDocumento struct {
	Codigo         string
	Nombre         string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// DocumentoUseCase proyecta facturas persistidas a documentos imprimibles.
type DocumentoUseCase struct {
	facturaRepo  repository.FacturaRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	negocio      Negocio
}

// NewDocumentoUseCase construye el caso de uso.
func NewDocumentoUseCase(
	facturaRepo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	negocio Negocio,
) *DocumentoUseCase {
	return &DocumentoUseCase{
		facturaRepo:  facturaRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		negocio:      negocio,
	}
}

// Render arma el documento de una factura: une la factura con los catálogos
// vigentes de productos y clientes. Solo lectura e idempotente; con los
// mismos catálogos produce siempre el mismo documento.
//
// Las referencias colgando degradan sin error: cliente inexistente deja el
// nombre vacío, las líneas con producto no resoluble se omiten de la tabla.
// Los totales son los congelados en la factura, no se recalculan.
// Devuelve ErrNotFound solo si la factura misma no existe.
func (uc *DocumentoUseCase) Render(facturaID string) (*Documento, error) {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}

	doc := &Documento{
		Negocio:    uc.negocio,
		FacturaID:  factura.ID,
		Fecha:      factura.Fecha,
		AplicarIVA: factura.AplicarIVA,
		Subtotal:   factura.Subtotal,
		IVA:        factura.IVA,
		Total:      factura.Total,
		Pie:        PieDePagina,
	}

	if cliente, err := uc.clienteRepo.GetByID(factura.ClienteID); err == nil && cliente != nil {
		doc.Cliente = cliente.Nombre
	}

	catalogo, err := uc.productoRepo.List("")
	if err != nil {
		return nil, err
	}
	porID := make(map[string]*entity.Producto, len(catalogo))
	for _, p := range catalogo {
		porID[p.ID] = p
	}

	for _, item := range factura.Items {
		p, ok := porID[item.ProductoID]
		if !ok {
			continue // referencia colgando: la fila no se renderiza
		}
		unitario := domainbilling.PrecioUnitario(p.Precio, factura.AplicarIVA)
		doc.Filas = append(doc.Filas, FilaDocumento{
			Codigo:         p.Codigo,
			Nombre:         p.Nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: unitario,
			Subtotal:       unitario.Mul(decimal.NewFromInt(int64(item.Cantidad))),
		})
	}

	return doc, nil
}
