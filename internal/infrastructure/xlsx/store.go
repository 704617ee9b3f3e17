// Package xlsx persiste cada tabla del sistema como un libro .xlsx plano
// (fila de encabezados + una fila por registro), el mismo formato de planilla
// que el negocio ya maneja. Modelo de escritor único: cada libro se guarda
// con un lock propio y el ciclo lectura-modificación-escritura ocurre con el
// lock tomado de punta a punta.
package xlsx

import (
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Table describe una tabla persistida: ruta del libro, hoja y encabezados.
type Table struct {
	Path    string
	Sheet   string
	Headers []string
}

// rowTable abstrae el acceso a filas para los repositorios: un Store real o
// el staging en memoria de una transacción.
type rowTable interface {
	Load() ([][]string, error)
	Update(fn func(rows [][]string) ([][]string, error)) error
}

// Store carga y guarda las filas de una tabla con acceso serializado.
type Store struct {
	table Table
	mu    sync.Mutex
}

var _ rowTable = (*Store)(nil)

// NewStore construye el store de una tabla.
func NewStore(table Table) *Store {
	return &Store{table: table}
}

// Path devuelve la ruta del libro.
func (s *Store) Path() string { return s.table.Path }

// Load lee todas las filas de datos (sin el encabezado). Un libro inexistente
// equivale a la tabla vacía.
func (s *Store) Load() ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save reescribe la tabla completa de forma atómica: libro temporal + rename.
func (s *Store) Save(rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(rows)
}

// Update aplica una mutación lectura-modificación-escritura manteniendo el
// lock del libro durante todo el ciclo.
func (s *Store) Update(fn func(rows [][]string) ([][]string, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.load()
	if err != nil {
		return err
	}
	out, err := fn(rows)
	if err != nil {
		return err
	}
	return s.save(out)
}

func (s *Store) load() ([][]string, error) {
	f, err := excelize.OpenFile(s.table.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("abrir libro %s: %w", s.table.Path, err)
	}
	defer f.Close()
	rows, err := f.GetRows(s.table.Sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s de %s: %w", s.table.Sheet, s.table.Path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func (s *Store) save(rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := s.table.Sheet
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("renombrar hoja %s: %w", sheet, err)
		}
	}
	headers := make([]interface{}, len(s.table.Headers))
	for i, h := range s.table.Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("escribir encabezados de %s: %w", s.table.Path, err)
	}
	for i := range rows {
		cellName := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cellName, &rows[i]); err != nil {
			return fmt.Errorf("escribir fila %d de %s: %w", i+2, s.table.Path, err)
		}
	}

	tmp := s.table.Path + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("guardar libro %s: %w", s.table.Path, err)
	}
	if err := os.Rename(tmp, s.table.Path); err != nil {
		return fmt.Errorf("publicar libro %s: %w", s.table.Path, err)
	}
	return nil
}
