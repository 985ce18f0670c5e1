package file_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoBaladas/Facturacion/internal/storage/file"
)

func TestStore_ColeccionInexistente(t *testing.T) {
	s, err := file.New(t.TempDir())
	require.NoError(t, err)

	data, err := s.Load("productos")
	require.NoError(t, err)
	assert.Nil(t, data, "una colección nunca guardada carga como nil")
}

func TestStore_RoundTrip(t *testing.T) {
	s, err := file.New(t.TempDir())
	require.NoError(t, err)

	blob := []byte(`[{"id":"1","codigo":"A01"}]`)
	require.NoError(t, s.Save("productos", blob))

	data, err := s.Load("productos")
	require.NoError(t, err)
	assert.Equal(t, blob, data)
}

func TestStore_SobrescrituraCompleta(t *testing.T) {
	s, err := file.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("clientes", []byte(`[{"id":"1"},{"id":"2"}]`)))
	require.NoError(t, s.Save("clientes", []byte(`[]`)))

	data, err := s.Load("clientes")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data, "Save reemplaza el blob completo")
}

func TestStore_ColeccionesIndependientes(t *testing.T) {
	s, err := file.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("productos", []byte(`["p"]`)))
	require.NoError(t, s.Save("facturas", []byte(`["f"]`)))

	p, err := s.Load("productos")
	require.NoError(t, err)
	f, err := s.Load("facturas")
	require.NoError(t, err)
	assert.NotEqual(t, p, f)
}
