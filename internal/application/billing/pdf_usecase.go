package billing

import (
	"context"
	"fmt"
)

// PDFUseCase exporta el documento de una factura como PDF descargable.
type PDFUseCase struct {
	documentos *DocumentoUseCase
	generador  GeneradorPDF
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(documentos *DocumentoUseCase, generador GeneradorPDF) *PDFUseCase {
	return &PDFUseCase{documentos: documentos, generador: generador}
}

// Exportar genera el PDF de la factura y su nombre de archivo, derivado
// determinísticamente del identificador: Factura_<id>.pdf.
//
// Retorna domain.ErrNotFound si la factura no existe.
func (uc *PDFUseCase) Exportar(ctx context.Context, facturaID string) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.documentos.Render(facturaID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generador.Generar(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("Factura_%s.pdf", doc.FacturaID), nil
}
