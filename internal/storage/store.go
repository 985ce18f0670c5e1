// Package storage define el puerto de persistencia de colecciones.
//
// Cada colección (productos, clientes, facturas) se guarda como un único
// blob: un arreglo JSON ordenado de registros. No hay versión de esquema;
// los campos nuevos se agregan sin migración.
package storage

// Nombres de las colecciones persistidas.
const (
	ColProductos = "productos"
	ColClientes  = "clientes"
	ColFacturas  = "facturas"
)

// Store es el puerto de bajo nivel: carga y guarda el blob completo de una
// colección. Una colección inexistente carga como nil sin error.
type Store interface {
	Load(collection string) ([]byte, error)
	Save(collection string, data []byte) error
}
