// Package collection implementa los repositorios de dominio sobre el Store
// de colecciones: cada operación carga la lista completa, la transforma en
// memoria y la vuelve a guardar. Un mutex por colección serializa el ciclo
// leer-modificar-escribir dentro del proceso (el modelo asume un único
// escritor; ver DESIGN.md).
package collection

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/DiegoBaladas/Facturacion/internal/storage"
)

// coleccion maneja el blob JSON de una colección como lista tipada.
type coleccion[T any] struct {
	store storage.Store
	name  string
	mu    sync.Mutex
}

func newColeccion[T any](store storage.Store, name string) *coleccion[T] {
	return &coleccion[T]{store: store, name: name}
}

// leer carga y deserializa la lista; una colección vacía devuelve nil.
func (c *coleccion[T]) leer() ([]T, error) {
	data, err := c.store.Load(c.name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("colección %s corrupta: %w", c.name, err)
	}
	return list, nil
}

// escribir serializa y guarda la lista completa.
func (c *coleccion[T]) escribir(list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("serializar colección %s: %w", c.name, err)
	}
	return c.store.Save(c.name, data)
}

// modificar ejecuta fn sobre la lista cargada y persiste el resultado,
// todo bajo el lock de la colección.
func (c *coleccion[T]) modificar(fn func(list []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, err := c.leer()
	if err != nil {
		return err
	}
	list, err = fn(list)
	if err != nil {
		return err
	}
	return c.escribir(list)
}
