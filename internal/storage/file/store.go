// Package file implementa el Store de colecciones sobre archivos JSON,
// un archivo por colección bajo el directorio de datos configurado.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persiste cada colección como <dir>/<colección>.json.
type Store struct {
	dir string
}

// New crea el store y asegura que el directorio de datos exista.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Load devuelve el blob de la colección, o nil si todavía no existe.
func (s *Store) Load(collection string) ([]byte, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer colección %s: %w", collection, err)
	}
	return data, nil
}

// Save escribe el blob de forma atómica: archivo temporal + rename, para
// no dejar una colección a medio escribir si el proceso muere.
func (s *Store) Save(collection string, data []byte) error {
	dst := s.path(collection)
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("guardar colección %s: %w", collection, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("guardar colección %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("guardar colección %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("guardar colección %s: %w", collection, err)
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
