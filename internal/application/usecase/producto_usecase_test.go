package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoBaladas/Facturacion/internal/application/dto"
	"github.com/DiegoBaladas/Facturacion/internal/application/usecase"
	"github.com/DiegoBaladas/Facturacion/internal/domain"
	"github.com/DiegoBaladas/Facturacion/internal/infrastructure/collection"
	"github.com/DiegoBaladas/Facturacion/internal/storage/file"
)

func newProductoUC(t *testing.T) *usecase.ProductoUseCase {
	t.Helper()
	store, err := file.New(t.TempDir())
	require.NoError(t, err)
	return usecase.NewProductoUseCase(collection.NewProductoRepository(store))
}

func crearProducto(t *testing.T, uc *usecase.ProductoUseCase, codigo, nombre string, precio float64) *dto.ProductoResponse {
	t.Helper()
	out, err := uc.Crear(dto.CrearProductoRequest{
		Codigo: codigo,
		Nombre: nombre,
		Precio: decimal.NewFromFloat(precio),
	})
	require.NoError(t, err)
	return out
}

func TestProductoUseCase_CrearRechazaCodigoDuplicado(t *testing.T) {
	uc := newProductoUC(t)
	crearProducto(t, uc, "A-1", "Yerba", 100)

	_, err := uc.Crear(dto.CrearProductoRequest{
		Codigo: "A-1",
		Nombre: "Otra yerba",
		Precio: decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El catálogo queda con un solo producto.
	list, err := uc.Listar("")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProductoUseCase_ActualizarPermiteConservarSuPropioCodigo(t *testing.T) {
	uc := newProductoUC(t)
	p := crearProducto(t, uc, "A-1", "Yerba", 100)
	crearProducto(t, uc, "B-2", "Café", 200)

	// Mismo código, otro nombre: no es duplicado contra sí mismo.
	codigo := "A-1"
	nombre := "Yerba premium"
	out, err := uc.Actualizar(p.ID, dto.ActualizarProductoRequest{Codigo: &codigo, Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Yerba premium", out.Nombre)

	// El código de otro producto sí es duplicado.
	ajeno := "B-2"
	_, err = uc.Actualizar(p.ID, dto.ActualizarProductoRequest{Codigo: &ajeno})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductoUseCase_ActualizarInexistenteDevuelveNil(t *testing.T) {
	uc := newProductoUC(t)
	nombre := "x"
	out, err := uc.Actualizar("no-existe", dto.ActualizarProductoRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductoUseCase_ImportarBackupReemplazaTodo(t *testing.T) {
	uc := newProductoUC(t)
	crearProducto(t, uc, "VIEJO", "Producto viejo", 10)

	payload := []byte(`[
		{"codigo":"N-1","nombre":"Nuevo uno","precio":12.5},
		{"codigo":"N-2","nombre":"Nuevo dos","precio":30}
	]`)
	count, err := uc.ImportarBackup(payload)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	list, err := uc.Listar("")
	require.NoError(t, err)
	require.Len(t, list, 2)
	// El catálogo anterior desaparece por completo.
	for _, p := range list {
		assert.NotEqual(t, "VIEJO", p.Codigo)
		assert.NotEmpty(t, p.ID)
	}
}

func TestProductoUseCase_ImportarBackupRechazaTodoAnteUnElementoInvalido(t *testing.T) {
	uc := newProductoUC(t)
	crearProducto(t, uc, "A-1", "Yerba", 100)

	casos := map[string]string{
		"precio string":    `[{"codigo":"N-1","nombre":"ok","precio":12.5},{"codigo":"N-2","nombre":"mal","precio":"30"}]`,
		"sin codigo":       `[{"nombre":"sin codigo","precio":1}]`,
		"codigo vacío":     `[{"codigo":"","nombre":"x","precio":1}]`,
		"nombre no string": `[{"codigo":"N-1","nombre":7,"precio":1}]`,
		"no es arreglo":    `{"codigo":"N-1","nombre":"x","precio":1}`,
	}
	for nombre, payload := range casos {
		t.Run(nombre, func(t *testing.T) {
			_, err := uc.ImportarBackup([]byte(payload))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			// La colección queda intacta.
			list, err := uc.Listar("")
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, "A-1", list[0].Codigo)
		})
	}
}

func TestProductoUseCase_BackupExportaEImportaIdaYVuelta(t *testing.T) {
	uc := newProductoUC(t)
	crearProducto(t, uc, "A-1", "Yerba", 150.5)
	crearProducto(t, uc, "B-2", "Café", 300)

	backup, err := uc.ExportarBackup()
	require.NoError(t, err)
	require.Len(t, backup, 2)
	assert.Equal(t, 150.5, backup[0].Precio)

	// El export serializado se re-importa tal cual.
	payload, err := json.Marshal(backup)
	require.NoError(t, err)
	count, err := uc.ImportarBackup(payload)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
