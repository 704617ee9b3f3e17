package xlsx

import (
	"context"
	"fmt"

	"github.com/jhoicas/Negocio-api/internal/application/inventory"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta la venta como una transacción sobre los libros de ventas e
// inventario: carga ambas tablas con los locks tomados, aplica las mutaciones
// en un staging en memoria y solo al final publica ambos libros. Un error en
// el callback no toca los archivos.
type TxRunner struct {
	sales    *Store
	products *Store
}

// NewTxRunner construye el runner con los stores de ventas e inventario.
func NewTxRunner(sales, products *Store) *TxRunner {
	return &TxRunner{sales: sales, products: products}
}

// Run inicia la transacción, ejecuta fn con repos atados al staging y hace el
// flush de los libros modificados. Orden de flush fijo: primero ventas, luego
// inventario (si el flush de inventario falla a mitad de camino, la venta
// nunca queda sin registrar).
func (r *TxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Locks en orden fijo (ventas, inventario) durante todo el ciclo.
	r.sales.mu.Lock()
	defer r.sales.mu.Unlock()
	r.products.mu.Lock()
	defer r.products.mu.Unlock()

	salesRows, err := r.sales.load()
	if err != nil {
		return err
	}
	productRows, err := r.products.load()
	if err != nil {
		return err
	}

	salesTx := &txTable{rows: salesRows}
	productsTx := &txTable{rows: productRows}

	if err := fn(newSaleRepo(salesTx), newProductRepo(productsTx)); err != nil {
		return err
	}

	if salesTx.dirty {
		if err := r.sales.save(salesTx.rows); err != nil {
			return fmt.Errorf("confirmar libro de ventas: %w", err)
		}
	}
	if productsTx.dirty {
		if err := r.products.save(productsTx.rows); err != nil {
			return fmt.Errorf("confirmar libro de inventario: %w", err)
		}
	}
	return nil
}

// txTable staging en memoria de una tabla dentro de la transacción.
type txTable struct {
	rows  [][]string
	dirty bool
}

var _ rowTable = (*txTable)(nil)

func (t *txTable) Load() ([][]string, error) {
	return t.rows, nil
}

func (t *txTable) Update(fn func(rows [][]string) ([][]string, error)) error {
	out, err := fn(t.rows)
	if err != nil {
		return err
	}
	t.rows = out
	t.dirty = true
	return nil
}
