package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoBaladas/Facturacion/internal/application/billing"
	"github.com/DiegoBaladas/Facturacion/internal/application/usecase"
	"github.com/DiegoBaladas/Facturacion/internal/infrastructure/collection"
	apphttp "github.com/DiegoBaladas/Facturacion/internal/interfaces/http"
	"github.com/DiegoBaladas/Facturacion/internal/storage/file"
)

// buildTestApp arma la aplicación Fiber completa sobre un store temporal,
// con el mismo cableado que main.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := file.New(t.TempDir())
	require.NoError(t, err)

	productoRepo := collection.NewProductoRepository(store)
	clienteRepo := collection.NewClienteRepository(store)
	facturaRepo := collection.NewFacturaRepository(store)

	documentoUC := billing.NewDocumentoUseCase(facturaRepo, clienteRepo, productoRepo, billing.Negocio{
		Nombre:    "Negocio de Prueba",
		Direccion: "Calle Falsa 123",
		Telefono:  "099123456",
		Email:     "ventas@prueba.test",
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductoUC:  usecase.NewProductoUseCase(productoRepo),
		ClienteUC:   usecase.NewClienteUseCase(clienteRepo),
		FacturaUC:   billing.NewFacturaUseCase(facturaRepo, clienteRepo, productoRepo),
		DocumentoUC: documentoUC,
		PDFUC:       billing.NewPDFUseCase(documentoUC, pdfFake{}),
	})
	return app
}

type pdfFake struct{}

func (pdfFake) Generar(_ context.Context, _ *billing.Documento) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestAPI_ProductoCRUD(t *testing.T) {
	app := buildTestApp(t)

	resp, creado := doJSON(t, app, http.MethodPost, "/api/productos/", fiber.Map{
		"codigo": "A-1", "nombre": "Yerba", "precio": 100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := creado["id"].(string)
	require.NotEmpty(t, id)

	// Código duplicado.
	resp, errBody := doJSON(t, app, http.MethodPost, "/api/productos/", fiber.Map{
		"codigo": "A-1", "nombre": "Otra", "precio": 1,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errBody["code"])

	resp, leido := doJSON(t, app, http.MethodGet, "/api/productos/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Yerba", leido["nombre"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/productos/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/productos/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestAPI_BackupImportInvalidoEs400(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/productos/backup",
		bytes.NewReader([]byte(`[{"codigo":"A","nombre":"x","precio":"no numérico"}]`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_FacturaYDocumento(t *testing.T) {
	app := buildTestApp(t)

	_, producto := doJSON(t, app, http.MethodPost, "/api/productos/", fiber.Map{
		"codigo": "A-1", "nombre": "Yerba", "precio": 100,
	})
	_, cliente := doJSON(t, app, http.MethodPost, "/api/clientes/", fiber.Map{
		"nombre": "Juan Pérez", "email": "juan@prueba.test", "telefono": "099000000",
	})

	resp, factura := doJSON(t, app, http.MethodPost, "/api/facturas/", fiber.Map{
		"clienteId":  cliente["id"],
		"items":      []fiber.Map{{"productoId": producto["id"], "cantidad": 1}},
		"aplicarIVA": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	facturaID := factura["id"].(string)

	resp, doc := doJSON(t, app, http.MethodGet, "/api/facturas/"+facturaID+"/documento", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	// Montos de presentación a 2 decimales; el IVA vive dentro del subtotal.
	assert.Equal(t, "122.00", doc["subtotal"])
	assert.Equal(t, "22.00", doc["iva"])
	assert.Equal(t, "122.00", doc["total"])
	assert.Equal(t, "Juan Pérez", doc["cliente"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/facturas/no-existe/documento", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// PDF descargable con nombre determinístico.
	req := httptest.NewRequest(http.MethodGet, "/api/facturas/"+facturaID+"/pdf", nil)
	pdfResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, pdfResp.Header.Get(fiber.HeaderContentDisposition), "Factura_"+facturaID+".pdf")
}

func TestAPI_FacturaBorradorInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp, errBody := doJSON(t, app, http.MethodPost, "/api/facturas/", fiber.Map{
		"clienteId": "", "items": []fiber.Map{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errBody["code"])
}
