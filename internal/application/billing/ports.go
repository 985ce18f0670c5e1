package billing

import "context"

// GeneradorPDF renderiza un Documento como archivo PDF paginado.
type GeneradorPDF interface {
	Generar(ctx context.Context, doc *Documento) ([]byte, error)
}
